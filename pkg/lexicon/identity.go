package lexicon

// identityEntries holds iwi, hapū and governance-body names. Every entry here
// carries the highest cultural weight the scorer knows about.
func identityEntries() []Entry {
	iwi := func(correct, meaning string, confidence int, variants ...string) Entry {
		return Entry{
			Tier:         TierIdentity,
			Variants:     variants,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryIwi,
			Confidence:   confidence,
			Significance: SignificanceHighest,
		}
	}
	governance := func(correct, meaning string, confidence int, variants ...string) Entry {
		e := iwi(correct, meaning, confidence, variants...)
		e.Category = CategoryGovernance
		return e
	}

	entries := []Entry{
		iwi("Ngāi Tahu", "principal iwi of Te Waipounamu", 98,
			"ngai tahu", "ngaitahu", "ngai tahoo", "ngai taahu", "ngaai tahu"),
		iwi("Kāi Tahu", "Ngāi Tahu in the southern dialect", 95,
			"kai tahu", "kaitahu", "kai tahoo"),
		iwi("Ngāti Wāhiao", "hapū of Tūhourangi at Whakarewarewa", 95,
			"ngati wahiao", "ngati waheo", "ngarti wahiao", "ngati wahio", "ngati waiao", "ngati wahayo"),
		iwi("Tūhourangi", "Te Arawa iwi of the Rotorua lakes", 92,
			"tuhourangi", "tuhorangi", "tuhourangee"),
		iwi("Te Arawa", "confederation of iwi of Rotorua", 95,
			"te arawa", "the arawa", "te arrawa", "tearawa"),
		iwi("Ngāti Māmoe", "iwi absorbed into Ngāi Tahu", 95,
			"ngati mamoe", "ngati mamoi", "ngaati mamoe", "ngati mamo"),
		iwi("Waitaha", "earliest iwi of Te Waipounamu", 95,
			"wai taha", "waitarha", "waittaha"),
		iwi("Ngāti Tūāhuriri", "hapū of Ngāi Tahu centred on Tuahiwi", 95,
			"ngati tuahuriri", "ngati tuahiriri", "ngati tuahuri", "ngati tua huriri"),
		iwi("Ngāti Kurī", "hapū of Ngāi Tahu at Kaikōura", 94,
			"ngati kuri", "ngati kooree", "ngati kurii"),
		iwi("Kāti Huirapa", "hapū of Ngāi Tahu at Arowhenua and Puketeraki", 92,
			"kati huirapa", "kati huirapah", "kati huriapa"),
		iwi("Ngāti Irakehu", "hapū of Ngāi Tahu on Horomaka", 92,
			"ngati irakehu", "ngati irakehoo", "ngati iraqehu"),
		iwi("Ngāti Waewae", "hapū of Ngāi Tahu on Te Tai Poutini", 93,
			"ngati waewae", "ngati waiwai", "ngati wae wae"),
		iwi("Ngāti Wheke", "hapū of Ngāi Tahu at Rāpaki", 93,
			"ngati wheke", "ngati weke", "ngati whekeh"),
		iwi("Ngāpuhi", "iwi of Te Tai Tokerau", 93,
			"ngapuhi", "nga puhi", "ngapoohi"),
		iwi("Ngāti Whātua", "iwi of Tāmaki Makaurau", 93,
			"ngati whatua", "ngati watua", "ngati whaatua"),
		iwi("Tainui", "confederation of Waikato iwi", 90,
			"tai nui", "tainooi", "tainuee"),
		iwi("Rapuwai", "early iwi of Te Waipounamu", 88,
			"rapu wai", "rapuwhai", "rappuwai"),

		governance("Te Rūnanga o Ngāi Tahu", "tribal council of Ngāi Tahu", 97,
			"te runanga o ngai tahu", "te runanga o ngaitahu", "te runaanga o ngai tahu", "te ruunanga o ngai tahu"),
		governance("Te Ngāi Tūāhuriri Rūnanga", "papatipu rūnanga at Tuahiwi", 94,
			"te ngai tuahuriri runanga", "te ngai tuahiriri runanga"),
		governance("Te Hapū o Ngāti Wheke", "papatipu rūnanga at Rāpaki", 94,
			"te hapu o ngati wheke", "te hapu o ngati weke"),
		governance("Ōnuku Rūnanga", "papatipu rūnanga at Ōnuku", 92,
			"onuku runanga", "onukuu runanga", "o nuku runanga"),
		governance("Te Taumutu Rūnanga", "papatipu rūnanga at Taumutu", 93,
			"te taumutu runanga", "te tau mutu runanga"),
		governance("Te Rūnanga o Kaikōura", "papatipu rūnanga at Kaikōura", 94,
			"te runanga o kaikoura", "te runanga o kai koura"),
		governance("Te Rūnanga o Makaawhio", "papatipu rūnanga in South Westland", 92,
			"te runanga o makaawhio", "te runanga o makawhio", "te runanga o maka awhio"),
		governance("Te Rūnanga o Ngāti Waewae", "papatipu rūnanga at Arahura", 93,
			"te runanga o ngati waewae", "te runanga o ngati waiwai"),
		governance("Papatipu Rūnanga", "the eighteen regional councils of Ngāi Tahu", 93,
			"papatipu runanga", "papatipu runaanga", "papa tipu runanga"),
	}

	entries[len(entries)-1].Significance = SignificanceHigh
	return entries
}
