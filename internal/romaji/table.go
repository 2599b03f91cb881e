package romaji

// row lists the kana for a consonant prefix followed by a, i, u, e, o.
// An empty cell means the combination is not part of the table.
type row struct {
	prefix string
	kana   [5]string
}

var vowels = [5]byte{'a', 'i', 'u', 'e', 'o'}

var rows = []row{
	{"", [5]string{"ア", "イ", "ウ", "エ", "オ"}},

	{"k", [5]string{"カ", "キ", "ク", "ケ", "コ"}},
	{"ky", [5]string{"キャ", "キィ", "キュ", "キェ", "キョ"}},

	{"s", [5]string{"サ", "シ", "ス", "セ", "ソ"}},
	{"sh", [5]string{"シャ", "シ", "シュ", "シェ", "ショ"}},
	{"sy", [5]string{"シャ", "シィ", "シュ", "シェ", "ショ"}},

	{"t", [5]string{"タ", "チ", "ツ", "テ", "ト"}},
	{"th", [5]string{"テャ", "ティ", "テュ", "テェ", "テョ"}},
	{"ty", [5]string{"チャ", "チィ", "チュ", "チェ", "チョ"}},
	{"ts", [5]string{"ツァ", "ツィ", "ツ", "ツェ", "ツォ"}},

	{"c", [5]string{"カ", "シ", "ク", "セ", "コ"}},
	{"ch", [5]string{"チャ", "チ", "チュ", "チェ", "チョ"}},
	{"cy", [5]string{"チャ", "チィ", "チュ", "チェ", "チョ"}},

	{"q", [5]string{"クァ", "クィ", "ク", "クェ", "クォ"}},

	{"n", [5]string{"ナ", "ニ", "ヌ", "ネ", "ノ"}},
	{"ny", [5]string{"ニャ", "ニィ", "ニュ", "ニェ", "ニョ"}},

	{"h", [5]string{"ハ", "ヒ", "フ", "ヘ", "ホ"}},
	{"hy", [5]string{"ヒャ", "ヒィ", "ヒュ", "ヒェ", "ヒョ"}},

	{"f", [5]string{"ファ", "フィ", "フ", "フェ", "フォ"}},
	{"fy", [5]string{"フャ", "", "フュ", "", "フョ"}},

	{"m", [5]string{"マ", "ミ", "ム", "メ", "モ"}},
	{"my", [5]string{"ミャ", "ミィ", "ミュ", "ミェ", "ミョ"}},

	{"y", [5]string{"ヤ", "イ", "ユ", "イェ", "ヨ"}},

	{"r", [5]string{"ラ", "リ", "ル", "レ", "ロ"}},
	{"ry", [5]string{"リャ", "リィ", "リュ", "リェ", "リョ"}},

	{"w", [5]string{"ワ", "ウィ", "ウ", "ウェ", "ヲ"}},

	{"g", [5]string{"ガ", "ギ", "グ", "ゲ", "ゴ"}},
	{"gy", [5]string{"ギャ", "ギィ", "ギュ", "ギェ", "ギョ"}},

	{"z", [5]string{"ザ", "ジ", "ズ", "ゼ", "ゾ"}},
	{"zy", [5]string{"ジャ", "ジィ", "ジュ", "ジェ", "ジョ"}},

	{"j", [5]string{"ジャ", "ジ", "ジュ", "ジェ", "ジョ"}},
	{"jy", [5]string{"ジャ", "ジィ", "ジュ", "ジェ", "ジョ"}},

	{"d", [5]string{"ダ", "ヂ", "ヅ", "デ", "ド"}},
	{"dh", [5]string{"デャ", "ディ", "デュ", "デェ", "デョ"}},
	{"dy", [5]string{"ヂャ", "ヂィ", "ヂュ", "ヂェ", "ヂョ"}},

	{"b", [5]string{"バ", "ビ", "ブ", "ベ", "ボ"}},
	{"by", [5]string{"ビャ", "ビィ", "ビュ", "ビェ", "ビョ"}},

	{"v", [5]string{"ヴァ", "ヴィ", "ヴ", "ヴェ", "ヴォ"}},
	{"vy", [5]string{"ヴャ", "ヴィ", "ヴュ", "ヴェ", "ヴョ"}},

	{"p", [5]string{"パ", "ピ", "プ", "ペ", "ポ"}},
	{"py", [5]string{"ピャ", "ピィ", "ピュ", "ピェ", "ピョ"}},

	{"x", [5]string{"ァ", "ィ", "ゥ", "ェ", "ォ"}},
	{"xy", [5]string{"ャ", "ィ", "ュ", "ェ", "ョ"}},
	{"l", [5]string{"ァ", "ィ", "ゥ", "ェ", "ォ"}},
	{"ly", [5]string{"ャ", "ィ", "ュ", "ェ", "ョ"}},
}

// extras are syllables that do not fit the consonant+vowel grid.
var extras = []Syllable{
	{Romaji: "nn", Kana: "ン"},
	{Romaji: "xtu", Kana: "ッ"},
	{Romaji: "xtsu", Kana: "ッ"},
	{Romaji: "ltu", Kana: "ッ"},
	{Romaji: "ltsu", Kana: "ッ"},
}

// letterNames spells a single Latin letter the way it is read aloud.
var letterNames = map[rune]string{
	'a': "エー",
	'b': "ビー",
	'c': "シー",
	'd': "ディー",
	'e': "イー",
	'f': "エフ",
	'g': "ジー",
	'h': "エイチ",
	'i': "アイ",
	'j': "ジェイ",
	'k': "ケー",
	'l': "エル",
	'm': "エム",
	'n': "エヌ",
	'o': "オー",
	'p': "ピー",
	'q': "キュー",
	'r': "アール",
	's': "エス",
	't': "ティー",
	'u': "ユー",
	'v': "ヴィー",
	'w': "ダブリュー",
	'x': "エックス",
	'y': "ワイ",
	'z': "ズィー",
}
