package repository

import "sskcargo/models"

// PDFRepository bundles the lookups the document renderer needs.
type PDFRepository struct {
	LRRepo      LRRepository
	CompanyRepo CompanyRepository
}

func NewPDFRepository(lrRepo LRRepository, companyRepo CompanyRepository) *PDFRepository {
	return &PDFRepository{
		LRRepo:      lrRepo,
		CompanyRepo: companyRepo,
	}
}

// GetLRForPDF fetches one lorry receipt, nil when absent.
func (r *PDFRepository) GetLRForPDF(ownerID int64, lrNo string) (*models.LorryReceipt, error) {
	return r.LRRepo.GetByNo(ownerID, lrNo)
}

// GetCompanyForPDF returns the owner's letterhead, falling back to the
// default one so a document can always render.
func (r *PDFRepository) GetCompanyForPDF(ownerID int64) (*models.CompanyDetails, error) {
	details, err := r.CompanyRepo.Get(ownerID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = models.DefaultCompanyDetails(ownerID)
	}
	return details, nil
}
