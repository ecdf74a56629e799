package commonModels

import "time"

type Document struct {
	Id          string    `json:"doc_id"`
	Name        string    `json:"doc_name"`
	UploadedAt  time.Time `json:"uploaded_at"`
	ContentType DocType   `json:"contentType"`
}

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var ERR DocType = "ERROR"

// TopicResources pairs one detected topic with its formatted resources,
// videos first then articles.
type TopicResources struct {
	Topic     string   `json:"topic"`
	Resources []string `json:"resources"`
}

// StudyGuide is built once per document and never stored beyond the job TTL.
type StudyGuide struct {
	DocumentName string           `json:"document_name"`
	Entries      []TopicResources `json:"entries"`
}

func (g StudyGuide) Topics() []string {
	topics := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		topics = append(topics, e.Topic)
	}
	return topics
}
