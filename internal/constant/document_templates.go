package constant

// Document genres recognized by the composer and the renderer.
const (
	DocumentTypeDecree = "decree"
	DocumentTypeLetter = "letter"
	DocumentTypeReport = "report"
	DocumentTypeNote   = "note"
)

// Masthead and signature conventions shared by all official documents.
const (
	MastheadCountry  = "RÉPUBLIQUE GABONAISE"
	MastheadMotto    = "Union - Travail - Justice"
	MastheadMinistry = "MINISTÈRE DE LA FONCTION PUBLIQUE"

	DecreeSignatureTitle = "Le Ministre de la Fonction Publique"
	DecreeDistribution   = "Ampliations: SGG (2) - MFP (2) - Intéressé(e) (1) - JO (1) - Archives (2)"
)

// DocumentTemplates maps a document genre to its composition prompt.
// Each template is filled with (user request, knowledge context, date) and
// sent to the LLM as a single user message. The skeleton sections are fixed
// administrative conventions and must be preserved by the model.
var DocumentTemplates = map[string]string{
	DocumentTypeDecree: `Tu es un rédacteur juridique du Ministère de la Fonction Publique.
Rédige un projet d'arrêté/décret complet en markdown, en respectant
STRICTEMENT le squelette suivant:

# ARRÊTÉ N° ___/MFP/SG portant [objet]

## VISAS
- Vu la Constitution ;
- Vu le statut général de la Fonction Publique ;
- [autres visas pertinents]

## ARRÊTE

**Article 1er:** [dispositions principales]

**Article 2:** [dispositions complémentaires]

**Article 3:** Le présent arrêté, qui prend effet à compter de sa date de
signature, sera enregistré, publié et communiqué partout où besoin sera.

Demande de l'utilisateur:
%s

Base de connaissances (à exploiter pour les visas et le fond):
%s

Date du jour: %s

Réponds UNIQUEMENT avec le document en markdown, sans commentaire.`,

	DocumentTypeLetter: `Tu es un rédacteur administratif du Ministère de la Fonction Publique.
Rédige une lettre administrative complète en markdown, en respectant le
squelette suivant:

# LETTRE N° ___/MFP/DRH

[Objet: ...]

[Formule d'appel]

[Corps de la lettre en paragraphes]

[Formule de politesse]

**Le Directeur des Ressources Humaines**

Demande de l'utilisateur:
%s

Base de connaissances:
%s

Date du jour: %s

Réponds UNIQUEMENT avec le document en markdown, sans commentaire.`,

	DocumentTypeReport: `Tu es un rédacteur administratif du Ministère de la Fonction Publique.
Rédige un rapport complet en markdown, en respectant le squelette suivant:

# RAPPORT [objet]

## Contexte

## Constats

## Analyse

## Recommandations

## Conclusion

Demande de l'utilisateur:
%s

Base de connaissances (source des chiffres et constats):
%s

Date du jour: %s

Réponds UNIQUEMENT avec le document en markdown, sans commentaire.`,

	DocumentTypeNote: `Tu es un rédacteur administratif du Ministère de la Fonction Publique.
Rédige une note de service complète en markdown, en respectant le squelette
suivant:

# NOTE DE SERVICE N° ___/MFP/DRH

[Objet: ...]

[Destinataires]

[Corps de la note: instructions ou informations]

[Date d'application]

**Le Directeur des Ressources Humaines**

Demande de l'utilisateur:
%s

Base de connaissances:
%s

Date du jour: %s

Réponds UNIQUEMENT avec le document en markdown, sans commentaire.`,
}

// DocumentTitles provides the fallback title per genre when the composed
// markdown carries no top-level heading.
var DocumentTitles = map[string]string{
	DocumentTypeDecree: "ARRÊTÉ",
	DocumentTypeLetter: "LETTRE ADMINISTRATIVE",
	DocumentTypeReport: "RAPPORT",
	DocumentTypeNote:   "NOTE DE SERVICE",
}
