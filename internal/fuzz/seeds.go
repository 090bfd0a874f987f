package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var sourceSeeds = []string{
	"",
	"pub enum TokenKind {\n}\n",
	"pub enum TokenKind {\n    // TRIVIA\n    Whitespace,\n    // KEYWORDS\n    #[token(\"if\")]\n    KwIf,\n}\n",
	"pub enum TokenKind {\n    Orphan,\n    #[token(\"=\")]\n\n    Assign = 3,\n    // SPECIAL\n    Eof,\n}\n",
	"fn infix_binding_power(self) {\n    Self::Plus | Self::Minus => Some((10, 11)),\n    Self::Assign => Some((5, 4)),\n    _ => None,\n}\nfn prefix_binding_power(self) {\n    Self::Minus => 30,\n}\n",
	"fn infix_binding_power\n => (99999999999, 1)\n X => (1,\n",
}

var diagramSeeds = []string{
	"<<TOKEN_STATS>>\n<<TOKEN_STATS_END>>\n",
	"@startuml\n    <<TOKEN_STATS>>\n    old\n\n    <<TOKEN_STATS_END>>\n@enduml\n",
	"\t<<TOKEN_STATS>>\r\n\t<<TOKEN_STATS_END>>\r\n",
	"<<TOKEN_STATS_END>>\n<<TOKEN_STATS>>\n",
}

// addSourceSeeds adds the built-in token sources plus the repository's own
// token file when the fuzzer runs inside a checkout that has one.
func addSourceSeeds(f *testing.F) {
	for _, s := range sourceSeeds {
		f.Add([]byte(s))
	}
	path := filepath.Join("..", "..", "crates", "trust-syntax", "src", "lexer", "tokens.rs")
	// #nosec G304 -- fixed repository location
	if data, err := os.ReadFile(path); err == nil {
		f.Add(clampSeed(data))
	}
}

func clampSeed(data []byte) []byte {
	if len(data) > maxSeedBytes {
		return append([]byte(nil), data[:maxSeedBytes]...)
	}
	return append([]byte(nil), data...)
}
