package models

// LRPDFData feeds the lorry receipt HTML template, one render per copy.
type LRPDFData struct {
	Company    *CompanyDetails
	LR         *LorryReceipt
	Contacts   string // formatted contact numbers
	Date       string // formatted receipt date
	GrandTotal float64
	TotalWords string
	CopyTitle  string
	ItemCount  int
}

// InvoicePDFData feeds the consolidated bill HTML template.
type InvoicePDFData struct {
	Company *CompanyDetails
	Bill    *ConsolidatedBill
	Date    string // formatted bill date
}
