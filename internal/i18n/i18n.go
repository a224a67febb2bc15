// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package i18n translates the fixed set of UI strings shown by the
// notifications page.
package i18n

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	catalogOnce sync.Once
	builder     *catalog.Builder
	matcher     = language.NewMatcher(Supported)
)

func sharedCatalog() *catalog.Builder {
	catalogOnce.Do(func() {
		var err error
		builder, err = NewCatalog()
		if err != nil {
			panic("i18n: " + err.Error())
		}
	})
	return builder
}

// MatchLanguage picks the best supported language for an Accept-Language
// header or a config value such as "it". Empty input yields English.
func MatchLanguage(accept string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}

// Printer renders keys in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

func NewPrinter(tag language.Tag) *Printer {
	_, idx, _ := matcher.Match(tag)
	tag = Supported[idx]
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(sharedCatalog())),
	}
}

func (p *Printer) Language() language.Tag { return p.tag }

// T translates key, formatting args into the message. Numbers are rendered
// with the language's digit grouping.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Count translates a plural message for n. The number is printed without
// digit grouping.
func (p *Printer) Count(key string, n uint64) string {
	return p.p.Sprintf(key, n, strconv.FormatUint(n, 10))
}

type ctxKey struct{}

// WithPrinter stores p in ctx.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the request printer, or an English one.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return NewPrinter(Supported[0])
}
