package romaji

// node is one state of the romaji trie. Leaves carry kana and have no
// children; inner nodes only route.
type node struct {
	kana string
	next map[byte]*node
}

func (n *node) isLeaf() bool { return n.next == nil }

func (n *node) child(b byte) (*node, bool) {
	c, ok := n.next[b]
	return c, ok
}

// Syllable is one romaji key of the trie and the kana it produces.
type Syllable struct {
	Romaji string
	Kana   string
}

var (
	syllables = buildSyllables()
	root      = buildTrie(syllables)
)

// Syllables returns every key of the trie with its kana.
func Syllables() []Syllable {
	out := make([]Syllable, len(syllables))
	copy(out, syllables)
	return out
}

func buildSyllables() []Syllable {
	var out []Syllable
	for _, r := range rows {
		for i, kana := range r.kana {
			if kana == "" {
				continue
			}
			out = append(out, Syllable{Romaji: r.prefix + string(vowels[i]), Kana: kana})
		}
	}
	return append(out, extras...)
}

func buildTrie(syls []Syllable) *node {
	top := &node{next: map[byte]*node{}}
	for _, s := range syls {
		cur := top
		last := len(s.Romaji) - 1
		for i := 0; i < last; i++ {
			b := s.Romaji[i]
			nxt, ok := cur.next[b]
			if !ok {
				nxt = &node{next: map[byte]*node{}}
				cur.next[b] = nxt
			}
			cur = nxt
		}
		cur.next[s.Romaji[last]] = &node{kana: s.Kana}
	}
	return top
}
