// internal/workers/documents/deliver-document/messages.go
package deliverdocument

import (
	"fmt"

	"legal-workers/internal/legal/locale"
)

var (
	emailSubject = locale.Text{EN: "Your legal document: %s", FR: "Votre document juridique : %s"}
	emailBody    = locale.Text{
		EN: "Hello %s,\n\nPlease find attached your document \"%s\".\nReference: %s\n\nThis document was generated from the information you provided. Have it reviewed by a qualified lawyer before use.\n",
		FR: "Bonjour %s,\n\nVeuillez trouver ci-joint votre document « %s ».\nRéférence : %s\n\nCe document a été généré à partir des informations fournies. Faites-le relire par un avocat qualifié avant utilisation.\n",
	}
	smsBody = locale.Text{
		EN: "Your document \"%s\" is ready. Reference: %s",
		FR: "Votre document « %s » est prêt. Référence : %s",
	}
	defaultTitle = locale.Text{EN: "Legal document", FR: "Document juridique"}
	defaultName  = locale.Text{EN: "there", FR: "Madame, Monsieur"}
)

func subject(lang locale.Language, title string) string {
	return fmt.Sprintf(emailSubject.In(lang), title)
}

func emailText(lang locale.Language, name, title, documentID string) string {
	if name == "" {
		name = defaultName.In(lang)
	}
	return fmt.Sprintf(emailBody.In(lang), name, title, documentID)
}

func smsText(lang locale.Language, title, documentID string) string {
	return fmt.Sprintf(smsBody.In(lang), title, documentID)
}
