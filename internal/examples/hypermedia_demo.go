// @title Hypermedia Demo
// @description Dynamic content loading with Datastar
// @html_start
// <button data-on-click="@get('/examples/elements/get-items')">
//     Fetch Data
// </button>
// <div id="data-content">
//     <p class="message">Click the button to load data</p>
// </div>
// @html_end

package examples

import (
	"fmt"
	"net/http"
	"time"

	"github.com/conneroisu/showcase/internal/renderer"
)

// ItemsMessage greets whoever loads the demo items.
const ItemsMessage = "Hello from the showcase!"

// demoItemCount is how many placeholder items GetItems returns.
const demoItemCount = 3

// GetItems answers with a small server-rendered list and the time it was made.
func (h *Handlers) GetItems(w http.ResponseWriter, r *http.Request) {
	items := make([]string, 0, demoItemCount)
	for i := 1; i <= demoItemCount; i++ {
		items = append(items, fmt.Sprintf("Item %d", i))
	}

	stamp := h.now().UTC().Format(time.RFC3339)
	h.render(w, r, renderer.DataItems(ItemsMessage, stamp, items))
}
