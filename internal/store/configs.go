package store

import (
	"previplan/internal/engine/schema"
)

func idField() schema.FieldConfig {
	return schema.FieldConfig{Key: "id", Label: "ID", Type: schema.TypeNumber, Hidden: true, ReadOnly: true}
}

func updatedAtField(order int) schema.FieldConfig {
	return schema.FieldConfig{Key: "updated_at", Label: "Mis à jour", Type: schema.TypeDate, ReadOnly: true, Order: order}
}

var statusSiteOptions = []schema.EnumOption{
	{Value: "planned", Label: "Prévu"},
	{Value: "active", Label: "En cours"},
	{Value: "closed", Label: "Clôturé"},
}

var riskLevelOptions = []schema.EnumOption{
	{Value: "low", Label: "Faible"},
	{Value: "medium", Label: "Moyen"},
	{Value: "high", Label: "Élevé"},
	{Value: "critical", Label: "Critique"},
}

var docStatusOptions = []schema.EnumOption{
	{Value: "draft", Label: "Brouillon"},
	{Value: "signed", Label: "Signé"},
	{Value: "expired", Label: "Expiré"},
}

var bdtStatusOptions = []schema.EnumOption{
	{Value: "draft", Label: "Brouillon"},
	{Value: "signed", Label: "Signé"},
	{Value: "done", Label: "Terminé"},
}

var analysisStatusOptions = []schema.EnumOption{
	{Value: "draft", Label: "Brouillon"},
	{Value: "validated", Label: "Validé"},
}

// Configs authors the EntityConfig for every entity type. Field keys
// match the Ent column names, so records round-trip without mapping.
func Configs() map[string]*schema.EntityConfig {
	return map[string]*schema.EntityConfig{
		"site": {
			Type:         "site",
			Name:         "Site",
			PluralName:   "Sites",
			KeyField:     "id",
			DisplayField: "name",
			SearchFields: []string{"name", "city", "address"},
			DefaultSort:  "name",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "name", Label: "Nom", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "address", Label: "Adresse", Type: schema.TypeText, Order: 2},
				{Key: "city", Label: "Ville", Type: schema.TypeText, Order: 3},
				{Key: "postal_code", Label: "Code postal", Type: schema.TypeText, Order: 4,
					Pattern: `^\d{5}$`, PatternMessage: "Code postal à 5 chiffres attendu"},
				{Key: "status", Label: "Statut", Type: schema.TypeEnum, Order: 5, Options: statusSiteOptions},
				{Key: "start_date", Label: "Début", Type: schema.TypeDate, Order: 6},
				{Key: "end_date", Label: "Fin", Type: schema.TypeDate, Order: 7},
				updatedAtField(8),
			},
		},
		"company": {
			Type:         "company",
			Name:         "Entreprise",
			PluralName:   "Entreprises",
			KeyField:     "id",
			DisplayField: "name",
			SearchFields: []string{"name", "siret", "contact_name"},
			DefaultSort:  "name",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "name", Label: "Raison sociale", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "siret", Label: "SIRET", Type: schema.TypeText, Order: 2,
					Pattern: `^\d{14}$`, PatternMessage: "SIRET à 14 chiffres attendu"},
				{Key: "address", Label: "Adresse", Type: schema.TypeText, Order: 3},
				{Key: "phone", Label: "Téléphone", Type: schema.TypeText, Order: 4},
				{Key: "contact_name", Label: "Contact", Type: schema.TypeText, Order: 5},
				updatedAtField(6),
			},
		},
		"worker": {
			Type:         "worker",
			Name:         "Intervenant",
			PluralName:   "Intervenants",
			KeyField:     "id",
			DisplayField: "last_name",
			SearchFields: []string{"first_name", "last_name", "email"},
			DefaultSort:  "last_name",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "first_name", Label: "Prénom", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "last_name", Label: "Nom", Type: schema.TypeText, Required: true, Order: 2},
				{Key: "email", Label: "E-mail", Type: schema.TypeText, Order: 3,
					Pattern: `^[^@\s]+@[^@\s]+\.[^@\s]+$`, PatternMessage: "Adresse e-mail invalide"},
				{Key: "phone", Label: "Téléphone", Type: schema.TypeText, Order: 4},
				{Key: "company_id", Label: "Entreprise", Type: schema.TypeEntityRef, RefType: "company", Order: 5},
				{Key: "certifications", Label: "Habilitations", Type: schema.TypeValueList, ItemType: schema.TypeText, Order: 6},
				updatedAtField(7),
			},
		},
		"risk": {
			Type:             "risk",
			Name:             "Risque",
			PluralName:       "Risques",
			KeyField:         "id",
			DisplayField:     "title",
			SearchFields:     []string{"title", "description"},
			DefaultSort:      "title",
			PlaceholderImage: "/static/placeholder-risk.svg",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "title", Label: "Titre", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "description", Label: "Description", Type: schema.TypeText, Order: 2},
				{Key: "level", Label: "Niveau", Type: schema.TypeEnum, Required: true, Order: 3, Options: riskLevelOptions},
				{Key: "permit_required", Label: "Permis requis", Type: schema.TypeBoolean, Order: 4},
				{Key: "logo", Label: "Pictogramme", Type: schema.TypeImage, Order: 5},
				updatedAtField(6),
			},
		},
		"device": {
			Type:             "device",
			Name:             "Dispositif de sécurité",
			PluralName:       "Dispositifs de sécurité",
			KeyField:         "id",
			DisplayField:     "title",
			SearchFields:     []string{"title", "description"},
			DefaultSort:      "title",
			PlaceholderImage: "/static/placeholder-device.svg",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "title", Label: "Titre", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "description", Label: "Description", Type: schema.TypeText, Order: 2},
				{Key: "logo", Label: "Pictogramme", Type: schema.TypeImage, Order: 3},
				updatedAtField(4),
			},
		},
		"permit": {
			Type:             "permit",
			Name:             "Permis",
			PluralName:       "Permis",
			KeyField:         "id",
			DisplayField:     "title",
			SearchFields:     []string{"title", "description"},
			DefaultSort:      "title",
			PlaceholderImage: "/static/placeholder-permit.svg",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "title", Label: "Titre", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "description", Label: "Description", Type: schema.TypeText, Order: 2},
				{Key: "valid_until", Label: "Valide jusqu'au", Type: schema.TypeDate, Order: 3},
				{Key: "logo", Label: "Pictogramme", Type: schema.TypeImage, Order: 4},
				updatedAtField(5),
			},
		},
		"audit": {
			Type:             "audit",
			Name:             "Audit sécurité",
			PluralName:       "Audits sécurité",
			KeyField:         "id",
			DisplayField:     "title",
			SearchFields:     []string{"title", "description"},
			DefaultSort:      "title",
			PlaceholderImage: "/static/placeholder-audit.svg",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "title", Label: "Titre", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "description", Label: "Description", Type: schema.TypeText, Order: 2},
				{Key: "logo", Label: "Pictogramme", Type: schema.TypeImage, Order: 3},
				updatedAtField(4),
			},
		},
		"analysis": {
			Type:         "analysis",
			Name:         "Analyse de risque",
			PluralName:   "Analyses de risque",
			KeyField:     "id",
			DisplayField: "activity",
			SearchFields: []string{"activity", "measures"},
			DefaultSort:  "activity",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "activity", Label: "Activité", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "measures", Label: "Mesures de prévention", Type: schema.TypeText, Order: 2},
				{Key: "company_id", Label: "Entreprise", Type: schema.TypeEntityRef, RefType: "company", Order: 3},
				{Key: "status", Label: "Statut", Type: schema.TypeEnum, Order: 4, Options: analysisStatusOptions},
				updatedAtField(5),
			},
		},
		"pdp": {
			Type:         "pdp",
			Name:         "Plan de prévention",
			PluralName:   "Plans de prévention",
			KeyField:     "id",
			DisplayField: "reference",
			SearchFields: []string{"reference"},
			DefaultSort:  "reference",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "reference", Label: "Référence", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "site_id", Label: "Site", Type: schema.TypeEntityRef, RefType: "site", Required: true, Order: 2},
				{Key: "company_id", Label: "Entreprise", Type: schema.TypeEntityRef, RefType: "company", Required: true, Order: 3},
				{Key: "start_date", Label: "Début des travaux", Type: schema.TypeDate, Order: 4},
				{Key: "end_date", Label: "Fin des travaux", Type: schema.TypeDate, Order: 5},
				{Key: "icp_date", Label: "Inspection commune", Type: schema.TypeDate, Order: 6},
				{Key: "status", Label: "Statut", Type: schema.TypeEnum, Order: 7, Options: docStatusOptions},
				updatedAtField(8),
			},
		},
		"bdt": {
			Type:         "bdt",
			Name:         "Bon de travail",
			PluralName:   "Bons de travail",
			KeyField:     "id",
			DisplayField: "reference",
			SearchFields: []string{"reference"},
			DefaultSort:  "reference",
			Fields: []schema.FieldConfig{
				idField(),
				{Key: "reference", Label: "Référence", Type: schema.TypeText, Required: true, Order: 1},
				{Key: "site_id", Label: "Site", Type: schema.TypeEntityRef, RefType: "site", Required: true, Order: 2},
				{Key: "company_id", Label: "Entreprise", Type: schema.TypeEntityRef, RefType: "company", Required: true, Order: 3},
				{Key: "work_date", Label: "Date d'intervention", Type: schema.TypeDate, Order: 4},
				{Key: "status", Label: "Statut", Type: schema.TypeEnum, Order: 5, Options: bdtStatusOptions},
				updatedAtField(6),
			},
		},
	}
}
