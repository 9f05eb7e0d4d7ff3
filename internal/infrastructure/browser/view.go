package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-rod/rod"

	"planpaineis_propostas/internal/renderer"
)

// PageView is a loaded page addressed by element id.
type PageView struct {
	page *rod.Page
}

var _ renderer.View = (*PageView)(nil)

func (v *PageView) Element(ctx context.Context, id string) (renderer.Element, error) {
	has, el, err := v.page.Context(ctx).Has(fmt.Sprintf("[id=%q]", id))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", id, err)
	}
	if !has {
		return nil, fmt.Errorf("%w: %s", renderer.ErrViewNotFound, id)
	}
	return &Element{el: el}, nil
}

// Element is a DOM node whose inline styles are read and written through
// CSSStyleDeclaration.
type Element struct {
	el *rod.Element
}

var _ renderer.Element = (*Element)(nil)

func (e *Element) Style(ctx context.Context, prop string) (string, error) {
	res, err := e.el.Context(ctx).Eval(`(p) => this.style.getPropertyValue(p)`, prop)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (e *Element) SetStyle(ctx context.Context, prop, value string) error {
	_, err := e.el.Context(ctx).Eval(`(p, v) => { this.style.setProperty(p, v) }`, prop, value)
	return err
}

func (e *Element) Parent(ctx context.Context) (renderer.Element, error) {
	parent, err := e.el.Context(ctx).Parent()
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Element{el: parent}, nil
}

func (e *Element) InnerHTML(ctx context.Context) (string, error) {
	res, err := e.el.Context(ctx).Eval(`() => this.innerHTML`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}
