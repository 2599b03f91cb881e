package symbol

// mathReadings are used when the symbol sits between two operands.
var mathReadings = map[string]string{
	"+": "タス",
	"＋": "タス",
	"-": "ヒク",
	"−": "ヒク",
	"－": "ヒク",
	"*": "カケル",
	"×": "カケル",
	"/": "ワル",
	"÷": "ワル",
	"=": "イコール",
	"＝": "イコール",
	"≠": "ノットイコール",
	"<": "ショウナリ",
	">": "ダイナリ",
	"≦": "ショウナリイコール",
	"≤": "ショウナリイコール",
	"≧": "ダイナリイコール",
	"≥": "ダイナリイコール",
	"±": "プラスマイナス",
	"^": "ジョウ",
	"%": "パーセント",
}

// generalReadings are used everywhere else.
var generalReadings = map[string]string{
	"+":  "プラス",
	"＋":  "プラス",
	"-":  "ハイフン",
	"*":  "アスタリスク",
	"/":  "スラッシュ",
	"\\": "バックスラッシュ",
	"=":  "イコール",
	"&":  "アンド",
	"＆":  "アンド",
	"@":  "アット",
	"＠":  "アット",
	"#":  "シャープ",
	"＃":  "シャープ",
	"$":  "ドル",
	"%":  "パーセント",
	"％":  "パーセント",
	"~":  "チルダ",
	"_":  "アンダーバー",
	"|":  "バーティカルバー",
	"°":  "ド",
	"℃":  "ド",
	"€":  "ユーロ",
	"£":  "ポンド",
	"¥":  "エン",
	"￥":  "エン",
	"©":  "コピーライト",
	"®":  "トウロクショウヒョウ",
	"™":  "トレードマーク",
	"※":  "コメ",
	"→":  "ヤジルシ",
	"♪":  "オンプ",
	"★":  "ホシ",
	"☆":  "ホシ",
	"♥":  "ハート",
	"♡":  "ハート",
}

// faceMarks are the characters that make a symbol cluster read as a face.
var faceMarks = map[rune]bool{
	'(': true, ')': true, '（': true, '）': true,
	'[': true, ']': true, '［': true, '］': true,
	'{': true, '}': true, '｛': true, '｝': true,
	'<': true, '>': true, '＜': true, '＞': true,
	'「': true, '」': true, '『': true, '』': true, '【': true, '】': true,
	'・': true, '･': true, '·': true, '•': true,
}
