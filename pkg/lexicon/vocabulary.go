package lexicon

// vocabularyEntries holds everyday words whose most common error is a
// missing macron.
func vocabularyEntries() []Entry {
	word := func(correct, meaning string, confidence int, variants ...string) Entry {
		return Entry{
			Tier:         TierGenericVocabulary,
			Variants:     variants,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryVocabulary,
			Confidence:   confidence,
			Significance: SignificanceMedium,
		}
	}

	entries := []Entry{
		word("Māori", "the indigenous people of Aotearoa", 96, "maori", "maaori", "mowree"),
		word("whānau", "extended family", 95, "whanau", "whaanau", "fanow"),
		word("hapū", "sub-tribe", 93, "hapu", "haapu", "hapoo"),
		word("tāne", "man, men", 90, "tane", "taane"),
		word("wāhine", "women", 90, "wahine", "waahine"),
		word("kōrero", "talk, story", 92, "korero", "koorero", "korrero"),
		word("tēnā koe", "greeting to one person", 94, "tena koe", "teena koe", "tenna koe"),
		word("tēnā koutou", "greeting to three or more people", 94, "tena koutou", "teena koutou", "tena kotou"),
		word("pounamu", "greenstone, nephrite jade", 94, "pounamoo", "poonamu", "pownamu"),
		word("tūpuna", "ancestors", 92, "tupuna", "tuupuna", "toopuna"),
		word("tīpuna", "ancestors, southern usage", 92, "tipuna", "tiipuna", "teepuna"),
		word("kaumātua", "elder", 93, "kaumatua", "kaumaatua", "kowmatua"),
		word("wharenui", "meeting house", 92, "whare nui", "wharenuee", "farenui"),
		word("pōwhiri", "welcome ceremony", 93, "powhiri", "poowhiri", "powhiree", "pohiri"),
		word("hāngī", "earth oven", 93, "hangi", "haangi", "hungee"),
		word("kāinga", "home, village", 90, "kainga", "kaainga"),
		word("pākehā", "New Zealander of European descent", 92, "pakeha", "paakehaa", "pakeeha"),
		word("kōhanga", "language nest", 90, "kohanga", "koohanga"),
		word("whakapapa", "genealogy", 94, "whakkapapa", "whaka papa"),
		word("mokopuna", "grandchild", 90, "mokopoona", "moko puna"),
		word("rangatira", "chief", 90, "rangatirra", "ranga tira"),
		word("mihimihi", "introductory speeches", 88, "mihi mihi", "meehimeehi"),
		word("kaupapa", "purpose, agenda", 90, "kau papa", "kowpapa"),
		word("mōteatea", "traditional chant", 90, "moteatea", "mooteatea"),
		word("tā moko", "traditional tattooing", 92, "ta moko", "taa moko", "tar moko"),
		word("kākahu", "cloak, garment", 90, "kakahu", "kaakahu"),
		word("whenua", "land; placenta", 92, "whennua", "fenua"),
		word("mātāpuna", "source, spring", 88, "matapuna", "maatapuna"),
		word("tītī", "muttonbird", 90, "titi", "tiitii"),
		word("kererū", "wood pigeon", 90, "kereru", "kereruu"),
		word("pīwakawaka", "fantail", 90, "piwakawaka", "piiwakawaka"),
		word("kōwhai", "yellow-flowered tree", 90, "kowhai", "koowhai"),
		word("tōtara", "tree of the podocarp family", 90, "totara", "tootara"),
		word("karanga", "ceremonial call", 90, "karrunga", "kar anga"),
	}
	return entries
}

// culturalContextEntries holds advanced concepts. They are only active for
// expert users, where a wrong correction is cheaper to catch.
func culturalContextEntries() []Entry {
	concept := func(correct, meaning string, confidence int, variants ...string) Entry {
		return Entry{
			Tier:         TierCulturalContext,
			Variants:     variants,
			Correct:      correct,
			Meaning:      meaning,
			Category:     CategoryVocabulary,
			Confidence:   confidence,
			Significance: SignificanceHigh,
		}
	}

	return []Entry{
		concept("kaitiakitanga", "guardianship of people and environment", 93,
			"kaitiaki tanga", "kaitiakitaanga", "kai tiaki tanga"),
		concept("manaakitanga", "hospitality and care for guests", 93,
			"manaaki tanga", "manakitanga", "mana aki tanga"),
		concept("whanaungatanga", "kinship and relationship building", 92,
			"whanau tanga", "whanaunga tanga", "fanaungatanga"),
		concept("tūrangawaewae", "a place to stand", 93,
			"turangawaewae", "turanga waewae", "tuurangawaewae"),
		concept("mātauranga Māori", "Māori knowledge systems", 93,
			"matauranga maori", "maatauranga maori", "matauranga mari"),
		concept("ahikāroa", "continuous occupation, keeping the fires burning", 90,
			"ahi kaa roa", "ahikaroa", "ahi ka roa"),
		concept("mana whenua", "customary authority over land", 94,
			"manawhenua", "mana fenua", "mana wenua"),
		concept("tino rangatiratanga", "self-determination", 93,
			"tino rangatira tanga", "tino rangatiratanga", "tino rangatirratanga"),
		concept("wairuatanga", "spirituality", 90,
			"wairua tanga", "wairuataanga"),
		concept("taonga tuku iho", "treasures handed down", 92,
			"taonga tukuiho", "taonga tuku eeho"),
		concept("mahinga kai", "customary food gathering places", 92,
			"mahingakai", "mahinga kaai", "mahinga kaii"),
		concept("kotahitanga", "unity", 90,
			"kotahi tanga", "kotaahitanga"),
	}
}
