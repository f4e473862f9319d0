package intent

import "strings"

// Type is the classified purpose of one user turn.
type Type string

const (
	TypeConversation Type = "conversation"
	TypeDocument     Type = "document"
	TypeSynthesis    Type = "synthesis"
	TypeDetailed     Type = "detailed"
)

// ResponseMode drives the system prompt and token budget of the reply.
type ResponseMode string

const (
	ModeConcise  ResponseMode = "concise"
	ModeDetailed ResponseMode = "detailed"
	ModeAdaptive ResponseMode = "adaptive"
)

// Document genres, used as template keys by the composer.
const (
	DocumentDecree = "decree"
	DocumentLetter = "letter"
	DocumentReport = "report"
	DocumentNote   = "note"
)

// Intent is the classification result for one transcript.
// DocumentType is set iff Type == TypeDocument; ResponseMode otherwise.
type Intent struct {
	Type         Type
	DocumentType string
	ResponseMode ResponseMode
}

// "résume" counts as a document verb so that a summary request naming an
// administrative act ("résume rapidement ce décret") produces the act, not
// a spoken synthesis.
var documentVerbs = []string{
	"crée", "créer", "génère", "générer", "rédige", "rédiger",
	"écris", "écrire", "prépare", "préparer", "produis", "fais-moi", "fais moi",
	"résume",
}

var documentNouns = []string{
	"décret", "arrêté", "ordonnance", "lettre", "courrier",
	"note", "rapport", "réponse", "document",
}

var needPhrases = []string{
	"j'ai besoin d'un", "j'ai besoin d'une", "il me faut un", "il me faut une",
}

var decreeWords = []string{"décret", "arrêté", "ordonnance"}

var reportWords = []string{"rapport", "bilan", "analyse", "compte rendu", "synthèse"}

var noteWords = []string{"note"}

var synthesisWords = []string{
	"résume", "résumé", "en bref", "brièvement", "rapidement", "en résumé", "en quelques mots",
}

var detailWords = []string{
	"détaille", "détaillé", "explique", "pourquoi", "comment",
	"approfondi", "exhaustif", "en détail",
}

// Classify applies ordered pattern checks over the lower-cased transcript
// joined with the prior turn contents and returns on first match. The order
// is load-bearing: document beats synthesis beats detail beats the
// conversation default, because the categories overlap.
func Classify(transcript string, history []string) Intent {
	window := strings.ToLower(transcript)
	if len(history) > 0 {
		window = window + " " + strings.ToLower(strings.Join(history, " "))
	}

	if matchesDocument(window) {
		return Intent{
			Type:         TypeDocument,
			DocumentType: classifyDocumentType(window),
		}
	}
	if containsAny(window, synthesisWords) {
		return Intent{Type: TypeSynthesis, ResponseMode: ModeConcise}
	}
	if containsAny(window, detailWords) {
		return Intent{Type: TypeDetailed, ResponseMode: ModeDetailed}
	}
	return Intent{Type: TypeConversation, ResponseMode: ModeAdaptive}
}

func matchesDocument(window string) bool {
	if containsAny(window, needPhrases) && containsAny(window, documentNouns) {
		return true
	}
	return containsAny(window, documentVerbs) && containsAny(window, documentNouns)
}

// classifyDocumentType picks the genre by secondary checks in a fixed
// order. "Lettre de nomination" must stay a letter, so only the act words
// themselves select decree.
func classifyDocumentType(window string) string {
	if containsAny(window, decreeWords) {
		return DocumentDecree
	}
	if containsAny(window, reportWords) {
		return DocumentReport
	}
	if containsAny(window, noteWords) {
		return DocumentNote
	}
	return DocumentLetter
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
