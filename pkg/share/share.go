// Package share builds the social posts and clipboard text for a result.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/format"
)

// Post is share text together with the URL that publishes it.
type Post struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Bundle groups every share payload for one result.
type Bundle struct {
	LinkedIn Post   `json:"linkedin"`
	Twitter  Post   `json:"twitter"`
	Summary  string `json:"summary"`
	CTAURL   string `json:"ctaUrl"`
}

// Links configures where shares point.
type Links struct {
	SiteURL string
	CTAURL  string
}

// DefaultLinks returns the public calculator and call-to-action addresses.
func DefaultLinks() Links {
	return Links{SiteURL: constants.DefaultShareURL, CTAURL: constants.DefaultCTAURL}
}

func (l Links) normalized() Links {
	if strings.TrimSpace(l.SiteURL) == "" {
		l.SiteURL = constants.DefaultShareURL
	}
	if strings.TrimSpace(l.CTAURL) == "" {
		l.CTAURL = constants.DefaultCTAURL
	}
	return l
}

// Build returns all share payloads for r.
func (l Links) Build(r engine.Result) Bundle {
	l = l.normalized()
	return Bundle{
		LinkedIn: LinkedIn(r, l.SiteURL),
		Twitter:  Twitter(r, l.SiteURL),
		Summary:  Summary(r),
		CTAURL:   l.CTAURL,
	}
}

// LinkedIn returns the post text and the offsite share URL for siteURL. The
// share dialog only takes a URL, so callers copy the text for the user.
func LinkedIn(r engine.Result, siteURL string) Post {
	text := fmt.Sprintf("I just discovered I've lost %s to perfectionism and over-planning. \n\n"+
		"That's %d products I could've built instead of planning the \"perfect\" one.\n\n"+
		"Time to stop planning and start shipping. 💪\n\n"+
		"Calculate your planning debt: %s\n\n"+
		"#StartupLife #ShipIt #Entrepreneurship",
		format.WholeDollars(r.TotalDamage), r.ProductsBuilt, siteURL)

	return Post{
		Text: text,
		URL:  constants.LinkedInShareEndpoint + "?url=" + EncodeURIComponent(siteURL),
	}
}

// Twitter returns the tweet text and the intent URL carrying it.
func Twitter(r engine.Result, siteURL string) Post {
	text := fmt.Sprintf(`I've lost %s to overthinking and perfectionism.

That's %d products I never built.

Time to ship, not plan.

Calculate your planning debt:`, format.WholeDollars(r.TotalDamage), r.ProductsBuilt)

	return Post{
		Text: text,
		URL: constants.TwitterIntentEndpoint + "?text=" + EncodeURIComponent(text) +
			"&url=" + EncodeURIComponent(siteURL),
	}
}

// Summary returns the plain results text for the clipboard.
func Summary(r engine.Result) string {
	return fmt.Sprintf(`Planning Trap Calculator Results:
- Direct Cost: %s
- Opportunity Cost: %s
- Total Damage: %s
- Products I Could've Built: %d

Time to stop planning and start shipping!`,
		format.WholeDollars(r.DirectCost),
		format.WholeDollars(r.OpportunityCost),
		format.WholeDollars(r.TotalDamage),
		r.ProductsBuilt)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers escape a URI component:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
