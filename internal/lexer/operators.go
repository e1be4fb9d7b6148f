package lexer

import "github.com/ion-lang/ionc/internal/token"

// operatorFamily is one entry in the longest-match table: every lexeme that
// can start with a given leading byte, tried in longest-first order. This
// is the declarative table spec.md §4.1 calls for, replacing what the
// teacher (funvibe-funxy/internal/lexer/lexer.go) expresses as a hand
// written chain of nested `if l.peekChar() == ...` checks per leading
// character.
type operatorFamily struct {
	text string
	kind token.SyntaxKind
}

// operatorTable is keyed on the first byte of the operator; within a key,
// entries are ordered longest-first so the scanner's linear scan naturally
// implements longest-match (e.g. for '>': ">>>=", ">>>", ">>=", ">>", ">=", ">").
var operatorTable = map[byte][]operatorFamily{
	'>': {
		{">>>=", token.UShrEquals},
		{">>>", token.UShr},
		{">>=", token.ShrEquals},
		{">>", token.Shr},
		{">=", token.GreaterEquals},
		{">", token.Greater},
	},
	'<': {
		{"<<=", token.ShlEquals},
		{"<<", token.Shl},
		{"<=", token.LessEquals},
		{"<", token.Less},
	},
	'=': {
		{"==", token.EqualsEquals},
		{"=>", token.FatArrow},
		{"=", token.Equals},
	},
	'!': {
		{"!=", token.BangEquals},
		{"!", token.Bang},
	},
	'+': {
		{"++", token.PlusPlus},
		{"+=", token.PlusEquals},
		{"+", token.Plus},
	},
	'-': {
		{"->", token.Arrow},
		{"--", token.MinusMinus},
		{"-=", token.MinusEquals},
		{"-", token.Minus},
	},
	'*': {
		{"*=", token.StarEquals},
		{"*", token.Star},
	},
	'/': {
		{"/=", token.SlashEquals},
		{"/", token.Slash},
	},
	'%': {
		{"%=", token.PercentEquals},
		{"%", token.Percent},
	},
	'^': {
		{"^=", token.CaretEquals},
		{"^", token.Caret},
	},
	'~': {
		{"~", token.Tilde},
	},
	'&': {
		{"&&=", token.AndEquals},
		{"&&", token.AndAnd},
		{"&=", token.AmpEquals},
		{"&", token.Amp},
	},
	'|': {
		{"||=", token.OrEquals},
		{"||", token.OrOr},
		{"|=", token.PipeEquals},
		{"|", token.Pipe},
	},
	'?': {
		{"??=", token.NullCoalesceEquals},
		{"??", token.NullCoalesce},
		{"?.", token.OptionalDot},
		{"?", token.Question},
	},
	'.': {
		{"...", token.Ellipsis},
		{"..", token.DotDot},
		{".", token.Dot},
	},
}

// singleCharPunctuation holds the fixed-width punctuation that never
// participates in a longest-match family.
var singleCharPunctuation = map[byte]token.SyntaxKind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'@': token.At,
}

// matchOperator looks up input[pos:] against the declarative table for
// input[pos], returning the longest matching family and its byte length,
// or ok=false if nothing in the table matches.
func matchOperator(input string, pos int) (operatorFamily, bool) {
	family, ok := operatorTable[input[pos]]
	if !ok {
		return operatorFamily{}, false
	}
	for _, candidate := range family {
		end := pos + len(candidate.text)
		if end <= len(input) && input[pos:end] == candidate.text {
			return candidate, true
		}
	}
	return operatorFamily{}, false
}
