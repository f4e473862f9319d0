package intent

import "testing"

func TestClassifyDocumentTypes(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantType   string
	}{
		{"decree from act word", "Génère un décret portant nomination du directeur", DocumentDecree},
		{"order is a decree", "Prépare un arrêté fixant les modalités d'avancement", DocumentDecree},
		{"report", "Rédige un rapport sur les effectifs du ministère", DocumentReport},
		{"service note", "Fais-moi une note de service pour la direction", DocumentNote},
		{"letter", "Écris une lettre à la direction des ressources humaines", DocumentLetter},
		{"letter by default", "Crée un document de réponse au syndicat", DocumentLetter},
		{"nomination letter stays a letter", "Crée une lettre de nomination pour Monsieur Ondo", DocumentLetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.transcript, nil)
			if got.Type != TypeDocument {
				t.Fatalf("Classify(%q).Type = %q, want %q", tt.transcript, got.Type, TypeDocument)
			}
			if got.DocumentType != tt.wantType {
				t.Errorf("Classify(%q).DocumentType = %q, want %q", tt.transcript, got.DocumentType, tt.wantType)
			}
			if got.ResponseMode != "" {
				t.Errorf("document intent must not carry a response mode, got %q", got.ResponseMode)
			}
		})
	}
}

func TestClassifyModes(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantType   Type
		wantMode   ResponseMode
	}{
		{"synthesis", "Résume-moi la procédure de titularisation", TypeSynthesis, ModeConcise},
		{"synthesis briefly", "Explique brièvement le statut général", TypeSynthesis, ModeConcise},
		{"detail request", "Explique comment fonctionne l'avancement d'échelon", TypeDetailed, ModeDetailed},
		{"why question", "Pourquoi la demande a-t-elle été rejetée ?", TypeDetailed, ModeDetailed},
		{"default conversation", "Bonjour, quelles sont les primes disponibles ?", TypeConversation, ModeAdaptive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.transcript, nil)
			if got.Type != tt.wantType {
				t.Fatalf("Classify(%q).Type = %q, want %q", tt.transcript, got.Type, tt.wantType)
			}
			if got.ResponseMode != tt.wantMode {
				t.Errorf("Classify(%q).ResponseMode = %q, want %q", tt.transcript, got.ResponseMode, tt.wantMode)
			}
			if got.DocumentType != "" {
				t.Errorf("non-document intent must not carry a document type, got %q", got.DocumentType)
			}
		})
	}
}

func TestClassifyDocumentBeatsSynthesis(t *testing.T) {
	got := Classify("Résume-moi et crée une lettre de nomination", nil)
	if got.Type != TypeDocument {
		t.Fatalf("Type = %q, want %q", got.Type, TypeDocument)
	}
	if got.DocumentType != DocumentLetter {
		t.Errorf("DocumentType = %q, want %q", got.DocumentType, DocumentLetter)
	}
}

func TestClassifySummaryOfActIsDocument(t *testing.T) {
	got := Classify("Résume rapidement ce décret", nil)
	if got.Type != TypeDocument {
		t.Fatalf("Type = %q, want %q", got.Type, TypeDocument)
	}
	if got.DocumentType != DocumentDecree {
		t.Errorf("DocumentType = %q, want %q", got.DocumentType, DocumentDecree)
	}
}

func TestClassifySummaryWithoutActStaysSynthesis(t *testing.T) {
	got := Classify("Résume-moi la procédure de titularisation", nil)
	if got.Type != TypeSynthesis {
		t.Fatalf("Type = %q, want %q", got.Type, TypeSynthesis)
	}
	if got.ResponseMode != ModeConcise {
		t.Errorf("ResponseMode = %q, want %q", got.ResponseMode, ModeConcise)
	}
}

func TestClassifyUsesHistoryWindow(t *testing.T) {
	history := []string{"Je voudrais que tu rédiges un décret de nomination"}
	got := Classify("Oui, vas-y", history)
	if got.Type != TypeDocument {
		t.Fatalf("Type = %q, want %q", got.Type, TypeDocument)
	}
	if got.DocumentType != DocumentDecree {
		t.Errorf("DocumentType = %q, want %q", got.DocumentType, DocumentDecree)
	}
}

func TestClassifyNounAloneIsNotDocument(t *testing.T) {
	got := Classify("Qu'est-ce qu'un décret d'application ?", nil)
	if got.Type == TypeDocument {
		t.Fatalf("noun without imperative verb must not classify as document, got %+v", got)
	}
}
