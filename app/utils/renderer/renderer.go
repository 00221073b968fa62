// renderer/renderer.go
package renderer

import (
	"html/template"

	"github.com/Rakhulsr/go-storefront/app/utils/format"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"github.com/unrolled/render"
)

func New(dir string, media storage.Storage, development bool) *render.Render {
	return render.New(render.Options{
		Directory:     dir,
		Layout:        "layout",
		Extensions:    []string{".html"},
		IsDevelopment: development,
		Funcs: []template.FuncMap{
			{
				"add":    func(a, b int) int { return a + b },
				"sub":    func(a, b int) int { return a - b },
				"money":  format.Price,
				"rating": format.Rating,
				"media":  media.URL,
				"stars": func(count int) []int {
					items := make([]int, count)
					for i := range items {
						items[i] = i + 1
					}
					return items
				},
			},
		},
	})
}
