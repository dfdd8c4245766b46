package nav

import (
	"regexp"
	"strings"
)

var multiSlash = regexp.MustCompile(`/{2,}`)

// MakeHref joins basePath and slug with a single slash. An empty basePath
// means "/". Runs of slashes anywhere in the result collapse to one.
func MakeHref(basePath, slug string) string {
	if basePath == "" {
		basePath = "/"
	}
	if basePath != "/" {
		basePath = strings.TrimSuffix(basePath, "/")
	}
	return multiSlash.ReplaceAllString(basePath+"/"+slug, "/")
}
