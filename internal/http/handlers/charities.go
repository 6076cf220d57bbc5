package handlers

import "net/http"

func (a *App) CharitiesList(w http.ResponseWriter, r *http.Request) {
	charities, err := a.Store.ListCharities(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]map[string]any, 0, len(charities))
	for _, c := range charities {
		items = append(items, map[string]any{
			"id":          c.ID,
			"name":        c.Name,
			"description": c.Description,
			"url":         c.URL,
			"category":    c.Category,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
