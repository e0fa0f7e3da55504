package parser

import "strings"

// Split tokenizes one raw line into its field strings.
//
// Fields are separated by opts.Delimiter outside quoted spans. A doubled
// quote inside a quoted span is a literal quote. A quoted span that is
// never closed is a structural error (ErrUnterminatedQuote). Fields are
// trimmed of surrounding spaces; a blank line tokenizes to no fields at
// all.
//
// Every chain node shares this single implementation so that field
// semantics stay consistent across repair strategies.
func Split(raw string, opts Options) ([]string, error) {
	raw = strings.TrimSuffix(raw, "\r")

	var (
		fields []string
		buf    strings.Builder
		quoted bool
	)

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case quoted && ch == opts.Quote:
			if i+1 < len(runes) && runes[i+1] == opts.Quote {
				// Doubled quote inside a span is a literal quote.
				buf.WriteRune(opts.Quote)
				i++
				continue
			}
			quoted = false
		case ch == opts.Quote:
			quoted = true
		case !quoted && ch == opts.Delimiter:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}

	if quoted {
		return nil, ErrUnterminatedQuote
	}

	fields = append(fields, strings.TrimSpace(buf.String()))

	// A line with no delimiter and no content has no fields.
	if len(fields) == 1 && fields[0] == "" {
		return nil, nil
	}

	return fields, nil
}
