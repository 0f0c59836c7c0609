package dictcc

import (
	"context"
	"strings"
)

type Dictionary struct {
	client *Client
}

func NewDictionary(client *Client) *Dictionary {
	return &Dictionary{client: client}
}

// Translate looks word up on the from/to pair and orients the columns so that
// FromLang is the language word was most likely typed in.
// An unrecognized page returns an empty Result and ErrUnrecognizedLayout.
func (d *Dictionary) Translate(ctx context.Context, word, from, to string) (Result, error) {
	if err := CheckLanguages(from, to); err != nil {
		return Result{}, err
	}

	body, err := d.client.Fetch(ctx, word, from, to)
	if err != nil {
		return Result{}, err
	}

	res, _, err := ParsePage(strings.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	return CorrectOrder(res, word), nil
}
