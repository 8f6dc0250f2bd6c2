package routing

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

const (
	MimeJSON = "application/json"
	MimeHTML = "text/html"

	jsonSuffix = ".json"
)

type acceptRange struct {
	mediaType string
	quality   float64
}

// WantsJSON reports whether the caller asked for a JSON response, either by
// requesting a path ending in .json or by accepting JSON with a higher
// quality than HTML
func WantsJSON(r *http.Request) bool {
	if strings.HasSuffix(r.URL.Path, jsonSuffix) {
		return true
	}
	ranges := parseAccept(r.Header.Get("Accept"))
	return quality(ranges, MimeJSON) > quality(ranges, MimeHTML)
}

func quality(ranges []acceptRange, mediaType string) float64 {
	if len(ranges) == 0 {
		return 1
	}
	for _, ar := range ranges {
		if matches(ar.mediaType, mediaType) {
			return ar.quality
		}
	}
	return 0
}

// parseAccept returns the ranges sorted by quality, so the first range
// matching an offer decides its quality whatever its specificity
func parseAccept(accept string) []acceptRange {
	var ranges []acceptRange
	for _, part := range strings.Split(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mediaType, params, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}
		q := 1.0
		if raw, ok := params["q"]; ok {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		ranges = append(ranges, acceptRange{mediaType: mediaType, quality: q})
	}
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].quality > ranges[j].quality
	})
	return ranges
}

func matches(mediaType, offer string) bool {
	if mediaType == "*/*" || mediaType == offer {
		return true
	}
	if strings.HasSuffix(mediaType, "/*") {
		return strings.HasPrefix(offer, strings.TrimSuffix(mediaType, "*"))
	}
	return false
}
