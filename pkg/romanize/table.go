package romanize

// Ethiopic block bounds used by ContainsEthiopic.
const (
	ethiopicFirst rune = 0x1200
	ethiopicLast  rune = 0x137F
)

// consonantRow is a Fidel row: seven consecutive code points sharing one consonant.
type consonantRow struct {
	base      rune
	consonant string
}

// vowel orders 1 through 7. The 6th order is the bare consonant.
var vowelOrders = [7]string{"e", "u", "i", "a", "e", "", "o"}

var consonantRows = []consonantRow{
	{0x1200, "h"},  // ሀ
	{0x1208, "l"},  // ለ
	{0x1210, "h"},  // ሐ
	{0x1218, "m"},  // መ
	{0x1220, "s"},  // ሠ
	{0x1228, "r"},  // ረ
	{0x1230, "s"},  // ሰ
	{0x1238, "sh"}, // ሸ
	{0x1240, "q"},  // ቀ
	{0x1260, "b"},  // በ
	{0x1268, "v"},  // ቨ
	{0x1270, "t"},  // ተ
	{0x1278, "ch"}, // ቸ
	{0x1280, "h"},  // ኀ
	{0x1290, "n"},  // ነ
	{0x1298, "ny"}, // ኘ
	{0x12A8, "k"},  // ከ
	{0x12B8, "h"},  // ኸ
	{0x12C8, "w"},  // ወ
	{0x12D8, "z"},  // ዘ
	{0x12E0, "zh"}, // ዠ
	{0x12E8, "y"},  // የ
	{0x12F0, "d"},  // ደ
	{0x1300, "j"},  // ጀ
	{0x1308, "g"},  // ገ
	{0x1320, "t"},  // ጠ
	{0x1328, "ch"}, // ጨ
	{0x1330, "p"},  // ጰ
	{0x1338, "ts"}, // ጸ
	{0x1340, "ts"}, // ፀ
	{0x1348, "f"},  // ፈ
	{0x1350, "p"},  // ፐ
}

// vowel carrier rows (አ, ዐ) have no consonant of their own.
var vowelRows = []rune{0x12A0, 0x12D0}

var vowelCarrier = [7]string{"a", "u", "i", "a", "e", "e", "o"}

// first-order laryngeals are read with an open vowel.
var overrides = map[rune]string{
	0x1200: "ha", // ሀ
	0x1210: "ha", // ሐ
	0x1280: "ha", // ኀ
}

var labialized = map[rune]string{
	0x120F: "lwa", 0x121F: "mwa", 0x122F: "rwa", 0x1237: "swa",
	0x123F: "shwa", 0x1267: "bwa", 0x1277: "twa", 0x127F: "chwa",
	0x1297: "nwa", 0x129F: "nywa", 0x12B3: "kwa", 0x12DF: "zwa",
	0x12E7: "zhwa", 0x12F7: "dwa", 0x1307: "jwa", 0x1313: "gwa",
	0x1327: "twa", 0x132F: "chwa", 0x1337: "pwa", 0x133F: "tswa",
	0x134F: "fwa",
}

var table = buildTable()

func buildTable() map[rune]string {
	t := make(map[rune]string, len(consonantRows)*7+len(vowelRows)*7+len(labialized))
	for _, row := range consonantRows {
		for i, v := range vowelOrders {
			t[row.base+rune(i)] = row.consonant + v
		}
	}
	for _, base := range vowelRows {
		for i, v := range vowelCarrier {
			t[base+rune(i)] = v
		}
	}
	for r, s := range overrides {
		t[r] = s
	}
	for r, s := range labialized {
		t[r] = s
	}
	return t
}

// syllable returns the ASCII syllable for a single Fidel character.
func syllable(r rune) (string, bool) {
	s, ok := table[r]
	return s, ok
}
