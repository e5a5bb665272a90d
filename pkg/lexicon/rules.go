package lexicon

// legalityEntries holds the phonetic-legality rules. Every variant contains
// at least one letter that does not exist in the Māori alphabet, usually
// because a speech recogniser heard an English word where a Māori name was
// spoken.
func legalityEntries() []Entry {
	rule := func(correct, meaning string, category Category, confidence int, ctx bool, variants ...string) Entry {
		return Entry{
			Tier:            TierPhoneticLegality,
			Variants:        variants,
			Correct:         correct,
			Meaning:         meaning,
			Category:        category,
			Confidence:      confidence,
			Significance:    SignificanceHighest,
			RequiresContext: ctx,
		}
	}

	fakarewarewa := rule("Whakarewarewa", "geothermal valley in Rotorua", CategoryPlace, 92, false,
		"fakarewarewa", "fucka rewarewa", "vaka rewarewa")
	fakarewarewa.Significance = SignificanceHigh
	fakarewarewa.Region = RegionRotorua

	kaikoura := rule("Kaikōura", "coastal town of the whale watch", CategoryPlace, 90, false,
		"kaikoula", "kaikoola", "kycoura")
	kaikoura.Significance = SignificanceHigh
	kaikoura.Region = RegionKaikoura

	return []Entry{
		rule("Ngāti Wāhiao", "hapū of Tūhourangi at Whakarewarewa", CategoryIwi, 95, false,
			"nazi waheo", "nazi wahiao", "naughty waheo", "naughty wahiao", "natty waheo", "nazi wyo"),
		rule("Ngāti", "tribe, descendants of", CategoryPhoneticPattern, 90, true,
			"nazi", "naughty", "natty", "gnati", "knotty"),
		rule("Ngāi Tahu", "principal iwi of Te Waipounamu", CategoryIwi, 95, false,
			"nigh tahu", "guy tahu", "ngy tahu", "nye tahu", "nigh tahoo"),
		rule("Kāi Tahu", "Ngāi Tahu in the southern dialect", CategoryIwi, 92, false,
			"ky tahu", "cry tahu", "kye tahu"),
		rule("Ngāi", "tribe, descendants of", CategoryPhoneticPattern, 88, true,
			"gnai", "nigh", "nye"),
		rule("Ngāti Whātua", "iwi of Tāmaki Makaurau", CategoryIwi, 93, false,
			"ngati fatua", "nazi fatua", "natty fatua"),
		rule("whānau", "extended family", CategoryPhoneticPattern, 93, false,
			"fanau", "farnau", "fanaw"),
		rule("whakapapa", "genealogy", CategoryPhoneticPattern, 93, false,
			"fakapapa", "fucka papa", "vakapapa"),
		fakarewarewa,
		kaikoura,
	}
}

// silentSoundEntries restore the "ng" and "wh" sounds that transcription
// drops most often. Short variants require a neighbouring trigger word so
// ordinary words are left alone.
func silentSoundEntries() []Entry {
	rule := func(correct, meaning string, category Category, confidence int, ctx bool, variants ...string) Entry {
		return Entry{
			Tier:            TierSilentSound,
			Variants:        variants,
			Correct:         correct,
			Meaning:         meaning,
			Category:        category,
			Confidence:      confidence,
			Significance:    SignificanceHigh,
			RequiresContext: ctx,
		}
	}

	return []Entry{
		rule("Ngāi Tahu", "principal iwi of Te Waipounamu", CategoryIwi, 94, false,
			"nai tahu", "nai tahoo", "naitahu"),
		rule("Ngāti", "tribe, descendants of", CategoryPhoneticPattern, 90, true,
			"nati", "naati", "narti"),
		rule("Ngāi", "tribe, descendants of", CategoryPhoneticPattern, 88, true,
			"nai", "naai"),
		rule("Ngāpuhi", "iwi of Te Tai Tokerau", CategoryIwi, 92, false,
			"napuhi", "apuhi", "napoohi"),
		rule("whānau", "extended family", CategoryPhoneticPattern, 92, false,
			"wanau", "waanau"),
		rule("whakapapa", "genealogy", CategoryPhoneticPattern, 92, false,
			"wakapapa", "waka papa"),
		rule("whenua", "land; placenta", CategoryPhoneticPattern, 88, true,
			"wenua"),
		rule("wharenui", "meeting house", CategoryPhoneticPattern, 90, false,
			"warenui", "ware nui"),
		rule("Whakaraupō", "Lyttelton Harbour", CategoryPlace, 90, false,
			"akaraupo", "aka raupo"),
	}
}

// complexEntries are tolerant multi-token patterns for names that speech
// recognisers split into English-sounding words. Patterns see the folded,
// single-spaced window of two to four words.
func complexEntries() []Entry {
	place := func(correct, meaning string, region Region, confidence int, pattern string, variants ...string) Entry {
		return Entry{
			Tier:         TierComplexPlaceName,
			Variants:     variants,
			Pattern:      pattern,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryPlace,
			Confidence:   confidence,
			Significance: SignificanceHigh,
			Region:       region,
		}
	}
	iwi := func(correct, meaning string, confidence int, pattern string, variants ...string) Entry {
		return Entry{
			Tier:         TierComplexIwiName,
			Variants:     variants,
			Pattern:      pattern,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryIwi,
			Confidence:   confidence,
			Significance: SignificanceHighest,
		}
	}

	return []Entry{
		place("Te Whakarewarewa Village", "the living village at Whakarewarewa", RegionRotorua, 85,
			`^(?:te|the|tee|to|too|took|tuk)\s(?:whakarewarewa|whaka\s?rewa\s?rewa|career|carrier|kareer|waka\s?rewa\s?rewa)\s(?:village|villages)$`),
		place("Te Waipounamu", "the South Island", RegionAll, 88,
			`^(?:te|the|tay)\s(?:wai|why|y)\s?(?:pounamu|pounamoo|poo\s?na\s?moo|punamu)$`),
		place("Kaikōura", "coastal town of the whale watch", RegionKaikoura, 86,
			`^(?:kai|kye|ky)\s(?:koura|kora|cora|coura)$`),
		place("Ōtepoti", "Dunedin", RegionOtago, 85,
			`^(?:oh|o)\s(?:te|tay|the)\s(?:poti|potty|pottie|porty)$`),
		place("Rotorua", "city on Lake Rotorua", RegionRotorua, 88,
			`^(?:roto|rotor|rota)\s(?:rua|ruah|rooa)$`),
		place("Ōtākaro", "Avon River, Christchurch", RegionCanterbury, 85,
			`^(?:oh|o)\s(?:taka|tacker|tucker|tarka)\s?(?:ro|roe|row)$`),

		iwi("Ngāi Tahu", "principal iwi of Te Waipounamu", 90,
			`^(?:ngai|nigh|nye|ny|nai|gnai)\s(?:tahu|tahoo|taahu|tarhu|tahoe)$`),
		iwi("Ngāti Wāhiao", "hapū of Tūhourangi at Whakarewarewa", 88,
			`^(?:ngati|nati|naughty|notty|natty|nazi)\s(?:wahiao|waheo|wahio|wyo|why\s?o|wahayo)$`),
		iwi("Tūhourangi", "Te Arawa iwi of the Rotorua lakes", 86,
			`^(?:too|tu|to)\s?(?:ho|hoe|hour)\s?(?:rangi|rungi|rangee)$`),
		iwi("Ngāti Māmoe", "iwi absorbed into Ngāi Tahu", 88,
			`^(?:ngati|nati|naughty|natty)\s(?:mamoe|mamoi|ma\s?moe)$`),
		iwi("Te Arawa", "confederation of iwi of Rotorua", 88,
			`^(?:te|the|tay)\s(?:arawa|a\s?rawa|arrawa|urawa)$`),
	}
}
