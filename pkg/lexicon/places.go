package lexicon

// placeEntries holds place names. Where a place has both an English and a
// Māori name, the English name is listed as a variant of the Māori one.
func placeEntries() []Entry {
	place := func(correct, meaning string, region Region, confidence int, variants ...string) Entry {
		return Entry{
			Tier:         TierPlaceName,
			Variants:     variants,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryPlace,
			Confidence:   confidence,
			Significance: SignificanceHigh,
			Region:       region,
		}
	}

	entries := []Entry{
		place("Ōtautahi", "Christchurch", RegionCanterbury, 92,
			"christchurch", "otautahi", "o tau tahi", "ohtautahi", "otautaahi"),
		place("Ōtākaro", "Avon River, Christchurch", RegionCanterbury, 90,
			"otakaro", "avon river", "otaakaro", "o taka ro"),
		place("Te Waipounamu", "the South Island", RegionAll, 94,
			"te waipounamu", "te wai pounamu", "te waipounamoo", "te wai pounamoo"),
		place("Aotearoa", "New Zealand", RegionAll, 94,
			"ao tea roa", "aotearoa", "aoteroa", "aotearowa"),
		place("Aoraki", "Mount Cook, in the southern dialect", RegionCanterbury, 90,
			"aorangi", "ao raki", "aorakee"),
		place("Rotorua", "city on Lake Rotorua", RegionRotorua, 95,
			"roto rua", "rotarua", "rotoruah", "rotorrua"),
		place("Whakarewarewa", "geothermal valley in Rotorua", RegionRotorua, 93,
			"wakarewarewa", "whakarewa rewa", "whaka rewarewa", "whakarewerewa"),
		place("Ōhinemutu", "lakeside village in Rotorua", RegionRotorua, 90,
			"ohinemutu", "o hine mutu", "ohinemootoo"),
		place("Kaikōura", "coastal town of the whale watch", RegionKaikoura, 95,
			"kaikoura", "kai koura", "kaikora", "kaikooura"),
		place("Ōtepoti", "Dunedin", RegionOtago, 90,
			"dunedin", "otepoti", "o te poti"),
		place("Ōtākou", "harbour settlement on the Otago Peninsula", RegionOtago, 88,
			"otakou", "o takou", "otaakou"),
		place("Ōamaru", "town in North Otago", RegionOtago, 90,
			"oamaru", "o amaru", "oamaroo"),
		place("Moeraki", "coastal village in North Otago", RegionOtago, 88,
			"moeraki", "moe raki", "moerakee"),
		place("Puketeraki", "settlement near Karitāne", RegionOtago, 88,
			"puketeraki", "puke te raki", "puketerakee"),
		place("Tāhuna", "Queenstown", RegionOtago, 88,
			"tahuna", "queenstown", "taahuna"),
		place("Whakaraupō", "Lyttelton Harbour", RegionCanterbury, 90,
			"whakaraupo", "wakaraupo", "whaka raupo", "lyttelton harbour"),
		place("Horomaka", "Banks Peninsula", RegionCanterbury, 88,
			"horomaka", "horo maka", "banks peninsula"),
		place("Ōnuku", "settlement on Akaroa Harbour", RegionCanterbury, 88,
			"onuku", "o nuku", "onukuu"),
		place("Tuahiwi", "home of Ngāi Tūāhuriri", RegionCanterbury, 90,
			"tuahiwi", "tua hiwi", "tuahewi"),
		place("Kaiapoi", "town north of Ōtautahi", RegionCanterbury, 90,
			"kaiapoi", "kai a poi", "kaiapoy"),
		place("Rāpaki", "bay in Whakaraupō", RegionCanterbury, 90,
			"rapaki", "raapaki", "rapakee"),
		place("Taumutu", "settlement at the southern end of Te Waihora", RegionCanterbury, 88,
			"taumutu", "tau mutu", "taumootoo"),
		place("Te Waihora", "Lake Ellesmere", RegionCanterbury, 90,
			"te waihora", "te wai hora", "lake ellesmere"),
		place("Waimakariri", "braided river north of Ōtautahi", RegionCanterbury, 88,
			"waimakariri", "waimak", "wai makariri"),
		place("Arahura", "river of pounamu on Te Tai Poutini", RegionWestCoast, 90,
			"arahura", "ara hura", "arahoora"),
		place("Te Tai Poutini", "the West Coast", RegionWestCoast, 90,
			"te tai poutini", "te tai potini", "tai poutini"),
		place("Murihiku", "Southland", RegionSouthland, 88,
			"murihiku", "muri hiku", "murihikoo"),
		place("Awarua", "Bluff and its surrounds", RegionSouthland, 88,
			"awarua", "awa rua", "awaroa"),
	}
	return entries
}
