// internal/legal/render/texts.go
package render

import "legal-workers/internal/legal/locale"

type text = locale.Text

var (
	genericCourt    = text{EN: "COURT OF FIRST INSTANCE", FR: "TRIBUNAL DE PREMIÈRE INSTANCE"}
	genericRepublic = text{EN: "REPUBLIC OF CAMEROON", FR: "RÉPUBLIQUE DU CAMEROUN"}

	labelPlaintiff = text{EN: "PLAINTIFF:", FR: "PLAIGNANT:"}
	labelDefendant = text{EN: "DEFENDANT:", FR: "DÉFENDEUR:"}
	labelAddress   = text{EN: "ADDRESS:", FR: "ADRESSE:"}
	labelContact   = text{EN: "CONTACT:", FR: "CONTACT:"}

	defendantName    = text{EN: "[Defendant Name]", FR: "[Nom du Défendeur]"}
	defendantAddress = text{EN: "[Defendant Address]", FR: "[Adresse du Défendeur]"}

	complaintBoilerplate = text{
		EN: "The plaintiff, by and through the undersigned counsel, hereby files this Complaint against the Defendant and alleges as follows...",
		FR: "Le plaignant, par l'intermédiaire du conseil soussigné, dépose par la présente cette plainte contre le défendeur et allègue ce qui suit...",
	}
	headingReferences = text{EN: "LEGAL REFERENCES:", FR: "RÉFÉRENCES JURIDIQUES:"}
	respectfully      = text{EN: "Respectfully submitted,", FR: "Respectueusement soumis,"}
	rolePlaintiff     = text{EN: "Plaintiff", FR: "Plaignant"}

	labelBetween    = text{EN: "BETWEEN:", FR: "ENTRE:"}
	labelAnd        = text{EN: "AND:", FR: "ET:"}
	employerClause  = text{EN: `, hereinafter referred to as "the Employer"`, FR: `, ci-après dénommé "l'Employeur"`}
	employeeClause  = text{EN: `, hereinafter referred to as "the Employee"`, FR: `, ci-après dénommé "l'Employé"`}
	headingTerms    = text{EN: "TERMS OF EMPLOYMENT", FR: "CONDITIONS D'EMPLOI"}
	labelPosition   = text{EN: "Position:", FR: "Poste:"}
	labelStartDate  = text{EN: "Start Date:", FR: "Date de début:"}
	labelSalary     = text{EN: "Salary:", FR: "Salaire:"}
	perMonth        = text{EN: "per month", FR: "par mois"}
	employeeDuty    = text{
		EN: "The Employee agrees to work diligently and faithfully perform the duties assigned by the Employer in accordance with Cameroon Labor Law.",
		FR: "L'Employé s'engage à travailler avec diligence et à remplir fidèlement les fonctions assignées par l'Employeur conformément au Code du Travail camerounais.",
	}
	governingLaw = text{
		EN: "This contract is governed by the Labor Code, Law No. 92/007 of August 14, 1992.",
		FR: "Ce contrat est régi par le Code du Travail, Loi n° 92/007 du 14 août 1992.",
	}
	captionEmployer = text{EN: "The Employer:", FR: "L'Employeur:"}
	captionEmployee = text{EN: "The Employee:", FR: "L'Employé:"}
	labelDate       = text{EN: "Date:", FR: "Date:"}

	willDeclaration = text{
		EN: "I, %s, a resident of %s, being of sound mind, hereby revoke all previous wills and codicils and declare this to be my Last Will and Testament.",
		FR: "Je, soussigné(e) %s, domicilié(e) à %s, sain(e) d'esprit, révoque par la présente tous testaments et codicilles antérieurs et déclare que ceci est mon Testament.",
	}
	headingAssets        = text{EN: "DISTRIBUTION OF ASSETS", FR: "DISTRIBUTION DES BIENS"}
	headingBeneficiaries = text{EN: "BENEFICIARIES", FR: "BÉNÉFICIAIRES"}
	headingExecutor      = text{EN: "EXECUTOR", FR: "EXÉCUTEUR TESTAMENTAIRE"}
	executorAppointment  = text{
		EN: "I hereby nominate, constitute and appoint %s as Executor of this my Last Will and Testament.",
		FR: "Je nomme, constitue et désigne par la présente %s comme Exécuteur Testamentaire de mon Testament.",
	}
	willAttestation = text{
		EN: "IN WITNESS WHEREOF, I hereby set my hand to this my Last Will and Testament.",
		FR: "EN FOI DE QUOI, j'appose ma signature sur mon Testament.",
	}
	roleTestator = text{EN: "Testator", FR: "Testateur"}
	labelSigned  = text{EN: "Signed on:", FR: "Signé le:"}
)
