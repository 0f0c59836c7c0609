package jetbrains

import (
	"context"
	"strconv"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/plugin"
)

const Name = "Jetbrains IDE Projects"

type Handler struct {
	lister      *Lister
	trigger     string
	defaultIcon string
}

func NewHandler(lister *Lister, trigger, defaultIcon string) *Handler {
	return &Handler{lister: lister, trigger: trigger, defaultIcon: defaultIcon}
}

func (h *Handler) Name() string    { return Name }
func (h *Handler) Trigger() string { return h.trigger }

func (h *Handler) Handle(_ context.Context, q plugin.Query) ([]item.Item, error) {
	if !q.Triggered {
		return nil, nil
	}

	entries, err := h.lister.List(q.String)
	if err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(entries))
	for _, e := range entries {
		icon := e.Launcher.Icon
		if icon == "" {
			icon = h.defaultIcon
		}
		items = append(items, item.Item{
			ID:         "-" + strconv.FormatInt(e.Timestamp, 10),
			Icon:       icon,
			Text:       e.Name,
			Subtext:    e.Path,
			Completion: h.trigger + e.Name,
			Actions: []item.Action{
				item.ProcAction("Open in "+e.Product, e.Launcher.Exec, e.Path),
			},
		})
	}
	return items, nil
}
