package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/akolanti/StudyGuideAPI/internal/adapter"
	"github.com/akolanti/StudyGuideAPI/internal/api"
	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
)

const refreshSeconds = 2

var guidePage = template.Must(template.New("guide").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .DocumentName}}{{.DocumentName}} - {{end}}Study Guide</title>
{{if .Running}}<meta http-equiv="refresh" content="{{.RefreshSeconds}}">{{end}}
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
details { border: 1px solid #ddd; border-radius: 4px; margin: .5rem 0; padding: .5rem 1rem; }
summary { font-weight: bold; cursor: pointer; }
.warning { background: #fff4ce; padding: .75rem 1rem; }
.error { background: #fde7e9; padding: .75rem 1rem; }
.fallback { color: #666; font-style: italic; }
</style>
</head>
<body>
<h1>Study Guide{{if .DocumentName}}: {{.DocumentName}}{{end}}</h1>
{{if .NotFound}}<p class="error" id="not-found">No study guide found for {{.Id}}. It may have expired.</p>{{end}}
{{if .Running}}
<section id="progress">
<p>Status: <span id="status">{{.Status}}</span>{{if .Step}} ({{.Step}}){{end}}</p>
{{with .Progress}}<progress max="{{.Total}}" value="{{.Completed}}"></progress>
<p>Finding resources: {{.Completed}} of {{.Total}} topics{{if .CurrentTopic}}, current topic: <em>{{.CurrentTopic}}</em>{{end}}</p>{{end}}
</section>
{{end}}
{{if .Warning}}<p class="warning" id="warning">{{.Warning}}</p>{{end}}
{{if .ErrorMessage}}<p class="error" id="error">{{.ErrorMessage}}</p>{{end}}
{{range .Topics}}
<details class="topic">
<summary>{{.Topic}}</summary>
{{if .Message}}<p class="fallback">{{.Message}}</p>{{else}}<ul>
{{range .Resources}}<li>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a>{{else}}{{.Label}}{{end}}</li>
{{end}}</ul>{{end}}
</details>
{{end}}
</body>
</html>
`))

type guideView struct {
	Id             string
	DocumentName   string
	Status         string
	Step           string
	Running        bool
	NotFound       bool
	RefreshSeconds int
	Progress       *api.ProgressResponse
	Warning        string
	ErrorMessage   string
	Topics         []topicView
}

type topicView struct {
	Topic     string
	Message   string
	Resources []resourceLink
}

type resourceLink struct {
	Label string
	URL   string
}

func toGuideView(job jobModel.Job) guideView {
	view := guideView{
		Id:             job.Id,
		DocumentName:   job.JobPayload.DocumentName,
		Status:         string(job.Status),
		Step:           string(job.CurrentStep),
		Running:        !job.IsFinished(),
		RefreshSeconds: refreshSeconds,
		Progress:       adapter.ToProgressResponse(job.Progress),
		Warning:        job.Warning,
		ErrorMessage:   job.Error.Message,
	}

	if g := adapter.ToGuideResponse(job.JobPayload.Guide); g != nil {
		for _, t := range g.Topics {
			tv := topicView{Topic: t.Topic, Message: t.Message}
			for _, r := range t.Resources {
				tv.Resources = append(tv.Resources, splitResource(r))
			}
			view.Topics = append(view.Topics, tv)
		}
	}
	return view
}

func notFoundView(id string) guideView {
	return guideView{Id: id, NotFound: true}
}

// splitResource turns "[Video] Title: https://..." into a link labelled
// "[Video] Title". Anything without a trailing URL is shown as text.
func splitResource(resource string) resourceLink {
	for _, scheme := range []string{": https://", ": http://"} {
		if i := strings.LastIndex(resource, scheme); i >= 0 {
			return resourceLink{Label: resource[:i], URL: resource[i+2:]}
		}
	}
	return resourceLink{Label: resource}
}

func writeGuidePage(w http.ResponseWriter, statusCode int, view guideView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := guidePage.Execute(w, view); err != nil {
		logRH.Error("Error rendering guide page", "error", err)
	}
}
