package tokenizer_test

import (
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
	"github.com/yaklabco/razorlex/pkg/tokenizer"
)

type tok struct {
	Type    string
	Content string
}

func toks[K symbol.Kind](symbols []*symbol.Symbol[K]) []tok {
	out := make([]tok, 0, len(symbols))
	for _, sym := range symbols {
		out = append(out, tok{Type: sym.TypeName(), Content: sym.Content()})
	}
	return out
}

func htmlSymbols(input string) []*symbol.HTML {
	return tokenizer.Tokenize[symbol.HTMLType](tokenizer.NewHTML(text.NewSeekableReader(input)))
}

func jsSymbols(input string, opts ...tokenizer.Option) []*symbol.JS {
	return tokenizer.Tokenize[symbol.JSType](tokenizer.NewJavaScript(text.NewSeekableReader(input), opts...))
}
