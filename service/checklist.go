package service

import "sort"

// Checklist lists the documents to gather for a case category
type Checklist struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

var checklists = map[string][]string{
	"Mutual Consent Divorce":         {"Marriage Certificate", "Wedding Photos", "Aadhar Card", "IT Returns", "Separation Proof"},
	"Domestic Violence (DV Case)":    {"Incident List", "Medical Reports", "FIR/NC Copy", "Ownership Proof", "Recordings"},
	"Cheque Bounce (Sec 138 NI Act)": {"Original Cheque", "Return Memo", "Legal Notice Copy", "Postal Receipt", "Bill/Invoice"},
	"Cyber Fraud":                    {"Screenshots", "Bank Statement", "Email Header", "Identity Proof"},
}

// ChecklistCategories returns the known case categories in sorted order
func ChecklistCategories() []string {
	categories := make([]string, 0, len(checklists))
	for c := range checklists {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// ChecklistFor returns the document checklist for a category
func ChecklistFor(category string) (*Checklist, error) {
	items, ok := checklists[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return &Checklist{Category: category, Items: append([]string(nil), items...)}, nil
}
