// @title Form Demo
// @description Form submission with hypermedia responses
// @html_start
// <form data-on-submit="@post('/examples/elements/submit-form', {contentType: 'form'})">
//     <div class="form-group">
//         <label for="name">Name:</label>
//         <input type="text" id="name" name="name" required>
//     </div>
//     <div class="form-group">
//         <label for="value">Value:</label>
//         <input type="text" id="value" name="value">
//     </div>
//     <button type="submit">Submit</button>
// </form>
// <div id="form-response">
//     <!-- The server's answer lands here -->
// </div>
// @html_end

package examples

import (
	"html"
	"net/http"
	"strings"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/logging"
	"github.com/conneroisu/showcase/internal/renderer"
)

// maxFormBytes bounds the demo form body.
const maxFormBytes = 64 << 10

// plainText strips any markup from submitted text.
func (h *Handlers) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(h.policy.Sanitize(s)))
}

// SubmitForm validates the demo form and confirms what it processed.
func (h *Handlers) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, errors.NewBadRequest("Invalid form data"))
		return
	}

	name := h.plainText(r.PostFormValue("name"))
	value := h.plainText(r.PostFormValue("value"))
	if name == "" {
		h.writeError(w, r, errors.NewBadRequest("Name cannot be empty"))
		return
	}

	h.logger.Info(r.Context(), "Form submitted", "name", logging.SanitizeForLog(name))

	h.render(w, r, renderer.FormResponse("Successfully processed: "+name, value))
}
