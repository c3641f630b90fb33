// Package web serves a browser preview of the intro animation: the page at
// / plays the same schedule the terminal adapter renders, fetched as JSON
// from /timeline.json. The schedule is computed by the pure core, so the
// browser is just another rendering adapter.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/glint-ui/glint/cmd/glint/internal/config"
	"github.com/glint-ui/glint/pkg/disclosure"
	"github.com/glint-ui/glint/pkg/timeline"
	"github.com/glint-ui/glint/pkg/wordmark"
)

// Server wraps the gin engine and the resolved animation config.
type Server struct {
	resolved *config.Resolved
	router   *gin.Engine
}

// New builds the server and its routes.
func New(resolved *config.Resolved) *Server {
	s := &Server{
		resolved: resolved,
		router:   gin.Default(),
	}
	s.router.SetHTMLTemplate(pageTemplate)

	s.router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", gin.H{
			"text": s.resolved.Wordmark.Text,
		})
	})
	s.router.GET("/timeline.json", func(c *gin.Context) {
		reduced := c.Query("reduced") == "1"
		c.JSON(http.StatusOK, BuildSchedule(s.resolved, reduced))
	})

	return s
}

// Run serves on $PORT (default 8080). godotenv autoload lets a local .env
// provide the port, matching how the rest of the environment is handled.
func (s *Server) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return s.router.Run(":" + port)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Schedule is the wire form of the full choreography.
type Schedule struct {
	Text          string   `json:"text"`
	Items         []string `json:"items"`
	Easing        string   `json:"easing"`
	ReducedMotion bool     `json:"reducedMotion"`
	BlinkMS       int64    `json:"blinkMs"`
	CaretRetireMS int64    `json:"caretRetireMs"`
	HintDelayMS   int64    `json:"hintDelayMs"`
	Wordmark      []Step   `json:"wordmark"`
	Expand        []Step   `json:"expand"`
	Collapse      []Step   `json:"collapse"`
}

// Step is one timeline step in wire form.
type Step struct {
	Track      string  `json:"track"`
	StartMS    int64   `json:"startMs"`
	DurationMS int64   `json:"durationMs"`
	From       float64 `json:"from"`
	To         float64 `json:"to"`
}

// BuildSchedule flattens the configured choreographies into wire form.
func BuildSchedule(resolved *config.Resolved, reduced bool) Schedule {
	wm := resolved.Wordmark
	dc := resolved.Disclosure
	if reduced {
		wm.ReducedMotion = true
		dc.ReducedMotion = true
	}

	seq := wordmark.New(wm)
	ctrl := disclosure.NewController(dc)
	defer ctrl.Dispose()

	easing := "ease-out-expo"
	if wm.Motion == wordmark.MotionSpring {
		easing = fmt.Sprintf("spring(%g,%g)", 70.0, 15.0)
	}

	expand := ctrl.ExpandTimeline()
	collapse := ctrl.CollapseTimeline()
	if dc.ReducedMotion {
		expand = expand.Instant()
		collapse = collapse.Instant()
	}

	return Schedule{
		Text:          wm.Text,
		Items:         dc.Items,
		Easing:        easing,
		ReducedMotion: wm.ReducedMotion,
		BlinkMS:       wm.BlinkPeriod.Milliseconds(),
		CaretRetireMS: seq.RetireTime().Milliseconds(),
		HintDelayMS:   hintDelay(dc),
		Wordmark:      wireSteps(seq.Timeline()),
		Expand:        wireSteps(expand),
		Collapse:      wireSteps(collapse),
	}
}

func hintDelay(dc disclosure.Config) int64 {
	if dc.ReducedMotion {
		return 0
	}
	return dc.HintDelay.Milliseconds()
}

func wireSteps(tl *timeline.Timeline) []Step {
	steps := tl.Steps()
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		out = append(out, Step{
			Track:      s.Track,
			StartMS:    s.Start.Milliseconds(),
			DurationMS: s.Duration.Milliseconds(),
			From:       s.From,
			To:         s.To,
		})
	}
	return out
}

// pageTemplate is the whole preview page: it fetches the schedule and plays
// it with the Web Animations API, honoring the visitor's reduced-motion
// preference by requesting the collapsed schedule.
var pageTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.text}}</title>
<style>
  body { background: #0b0b0f; color: #eee; font: 24px/1.4 monospace;
         display: flex; align-items: center; justify-content: center;
         height: 100vh; margin: 0; }
  #wordmark span { opacity: 0; display: inline-block; white-space: pre; }
  #caret { opacity: 1; }
</style>
</head>
<body>
<div id="wordmark"></div><span id="caret">▌</span>
<script>
const reduced = window.matchMedia('(prefers-reduced-motion: reduce)').matches;
fetch('/timeline.json' + (reduced ? '?reduced=1' : ''))
  .then(r => r.json())
  .then(play);

function play(schedule) {
  const mark = document.getElementById('wordmark');
  const spans = [...schedule.text].map(ch => {
    const el = document.createElement('span');
    el.textContent = ch;
    mark.appendChild(el);
    return el;
  });
  for (const step of schedule.wordmark) {
    const m = step.track.match(/^char(\d+)\.opacity$/);
    if (!m) continue;
    spans[+m[1]].animate(
      [{opacity: 0, transform: 'translateY(8px)'},
       {opacity: 1, transform: 'translateY(0)'}],
      {delay: step.startMs, duration: Math.max(step.durationMs, 1),
       easing: 'cubic-bezier(0.19, 1, 0.22, 1)', fill: 'forwards'});
  }
  const caret = document.getElementById('caret');
  const blink = setInterval(() => {
    caret.style.opacity = caret.style.opacity === '0' ? '1' : '0';
  }, Math.max(schedule.blinkMs, 1));
  setTimeout(() => { clearInterval(blink); caret.style.opacity = '0'; },
             schedule.caretRetireMs);
}
</script>
</body>
</html>
`))
