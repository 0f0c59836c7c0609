package dictcc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/Zuo-Peng/launcher-plugins/internal/config"
	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/plugin"
)

const Name = "DictCC"

type Handler struct {
	dict    *Dictionary
	cfg     config.DictConfig
	iconDir string
	log     hclog.Logger
}

func NewHandler(dict *Dictionary, cfg config.DictConfig, iconDir string, log hclog.Logger) *Handler {
	return &Handler{dict: dict, cfg: cfg, iconDir: iconDir, log: log.Named("dictcc")}
}

func (h *Handler) Name() string    { return Name }
func (h *Handler) Trigger() string { return h.cfg.Trigger }

func (h *Handler) Handle(ctx context.Context, q plugin.Query) ([]item.Item, error) {
	if !q.Triggered {
		return nil, nil
	}
	text := q.String
	if utf8.RuneCountInString(text) < h.cfg.MinQueryLength {
		return []item.Item{h.infoItem(q, "Enter a query: "+strings.TrimSpace(h.cfg.Trigger)+" text_to_translate")}, nil
	}

	res, err := h.dict.Translate(ctx, text, h.cfg.From, h.cfg.To)
	if errors.Is(err, ErrUnrecognizedLayout) {
		h.log.Warn("results page matched no known layout", "query", text)
		res, err = Result{}, nil
	}
	if err != nil {
		return nil, err
	}
	if res.Len() == 0 {
		return []item.Item{h.infoItem(q, "No results")}, nil
	}

	pageFrom, err := LabelCode(res.FromLang)
	if err != nil {
		return nil, err
	}
	pageTo, err := LabelCode(res.ToLang)
	if err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, res.Len())
	for _, p := range res.Pairs {
		from, to := h.direction(text, p, pageFrom, pageTo)
		src, dst := p.Source, p.Target
		if from != pageFrom {
			src, dst = dst, src
		}

		dstText, dstAttrs := splitAttributes(dst)
		srcText, srcAttrs := splitAttributes(src)
		items = append(items, item.Item{
			ID:         Name,
			Icon:       h.flagIcon(to),
			Completion: q.Raw,
			Text:       highlight(dstText, dstAttrs),
			Subtext:    highlight(srcText, srcAttrs),
			Actions: []item.Action{
				item.ClipAction("Copy translation to clipboard", dstText),
			},
		})
	}
	return items, nil
}

// direction picks the display orientation of a single pair: the side that
// contains the query is the "from" side. Pairs containing it on neither side
// fall back to the configured pair.
func (h *Handler) direction(query string, p Pair, pageFrom, pageTo string) (string, string) {
	switch {
	case strings.Contains(p.Source, query):
		return pageFrom, pageTo
	case strings.Contains(p.Target, query):
		return pageTo, pageFrom
	}
	h.log.Debug("can't find corresponding translation language", "query", query, "source", p.Source, "target", p.Target)
	return strings.ToLower(h.cfg.From), strings.ToLower(h.cfg.To)
}

func (h *Handler) infoItem(q plugin.Query, subtext string) item.Item {
	return item.Item{
		ID:         Name,
		Icon:       h.pluginIcon(),
		Completion: q.Raw,
		Text:       Name,
		Subtext:    subtext,
	}
}

func (h *Handler) pluginIcon() string {
	return filepath.Join(h.iconDir, "dictcc.png")
}

// flagIcon returns <iconDir>/<code>.svg when present.
func (h *Handler) flagIcon(code string) string {
	p := filepath.Join(h.iconDir, code+".svg")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return h.pluginIcon()
}

// attrRe splits "Hund {m}" or "dog [coll.]" into the word and its trailing grammar annotations.
var attrRe = regexp.MustCompile(`^(.*?)([{\[].*)?$`)

func splitAttributes(s string) (string, string) {
	m := attrRe.FindStringSubmatch(s)
	if m == nil {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

func highlight(text, attrs string) string {
	if attrs == "" {
		return text
	}
	return text + " <small><i>" + attrs + "</i></small>"
}
