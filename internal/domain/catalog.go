// internal/domain/catalog.go
package domain

// Catalog data is fixed at build time. There is no remote fetch; a real
// deployment would source this from a medicines collection instead.

func CatalogMedicines() []Medicine {
	return []Medicine{
		{ID: "med001", Name: "Paracetamol", Price: 5.99},
		{ID: "med002", Name: "Ibuprofen", Price: 6.49},
		{ID: "med003", Name: "Amoxicillin", Price: 12.99},
		{ID: "med004", Name: "Cetirizine", Price: 8.25},
		{ID: "med005", Name: "Omeprazole", Price: 14.50},
		{ID: "med006", Name: "Aspirin", Price: 4.99},
		{ID: "med007", Name: "Loratadine", Price: 7.75},
		{ID: "med008", Name: "Metformin", Price: 11.20},
		{ID: "med009", Name: "Atorvastatin", Price: 16.80},
		{ID: "med010", Name: "Vitamin D3", Price: 9.99},
		{ID: "med011", Name: "Diazepam", Price: 13.40},
		{ID: "med012", Name: "Salbutamol Inhaler", Price: 19.99},
		{ID: "med014", Name: "Antacid Tablets", Price: 3.99},
		{ID: "med015", Name: "Hydrocortisone Cream", Price: 6.99},
		{ID: "med016", Name: "Acetylcysteine", Price: 10.50},
	}
}

func CatalogInteractions() []InteractionRecord {
	return []InteractionRecord{
		{
			Medicine1:      "med001",
			Medicine2:      "med006",
			Severity:       SeverityModerate,
			Description:    "Combining Paracetamol with Aspirin may increase the risk of side effects. While occasional use of both is generally considered safe, regular long-term use together should be monitored by a healthcare provider.",
			Recommendation: "If you need pain relief, consider using just one of these medications. If you must use both, discuss with your doctor or pharmacist about proper dosing and timing.",
		},
		{
			Medicine1:      "med002",
			Medicine2:      "med006",
			Severity:       SeveritySevere,
			Description:    "Using Ibuprofen with Aspirin may increase the risk of gastrointestinal bleeding and ulcers. Both are NSAIDs and their combined effect can damage the stomach lining.",
			Recommendation: "Avoid using these medications together. If you've been prescribed both by a doctor, follow their guidance exactly and report any stomach pain immediately.",
		},
		{
			Medicine1:      "med003",
			Medicine2:      "med004",
			Severity:       SeverityMild,
			Description:    "There are typically no significant interactions between Amoxicillin (antibiotic) and Cetirizine (antihistamine). They can generally be taken together safely.",
			Recommendation: "You can typically take both medications as prescribed. However, always inform your doctor about all medicines you are taking.",
		},
		{
			Medicine1:      "med005",
			Medicine2:      "med014",
			Severity:       SeverityModerate,
			Description:    "Antacids can decrease the absorption of Omeprazole when taken simultaneously, making it less effective.",
			Recommendation: "Take Omeprazole at least 30 minutes to 1 hour before taking any antacid for best effectiveness.",
		},
		{
			Medicine1:      "med002",
			Medicine2:      "med011",
			Severity:       SeverityModerate,
			Description:    "Ibuprofen may increase the effects of Diazepam, potentially causing increased drowsiness, reduced coordination, and cognitive impairment.",
			Recommendation: "Use caution when combining these medications. Consider reducing the dosage of either medication and avoid activities requiring mental alertness until you know how this combination affects you.",
		},
	}
}
