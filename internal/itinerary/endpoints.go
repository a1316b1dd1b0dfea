// README: Candidate Gemini endpoint menu (API version x model id).
package itinerary

// The generativelanguage API retires and renames model ids without a cheap way
// to discover what a given key can use, so the generator walks a fixed menu
// instead of querying for availability. Versions are tried outermost: every
// model gets a shot on the preferred API surface before the loop degrades to
// the next one. Within a version, stronger models come first.
var apiVersions = []string{"v1", "v1beta"}

var geminiModels = []string{
	"gemini-1.5-pro-latest",
	"gemini-1.5-flash-latest",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
	"gemini-pro",
}

// candidate is one (version, model) pair to attempt. It only lives inside the
// generator's attempt loop.
type candidate struct {
	version string
	model   string
}

// candidates returns the full attempt order.
func candidates() []candidate {
	out := make([]candidate, 0, len(apiVersions)*len(geminiModels))
	for _, v := range apiVersions {
		for _, m := range geminiModels {
			out = append(out, candidate{version: v, model: m})
		}
	}
	return out
}
