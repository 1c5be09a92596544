package models

import "time"

// QuotationItem is one line of a quotation. TotalPrice is quantity × price
// unless the caller supplied an explicit non-zero override. Department and
// WorkType, when present, must satisfy the shared taxonomy.
type QuotationItem struct {
	Name       string  `json:"name" bson:"name"`
	Floor      *string `json:"floor,omitempty" bson:"floor,omitempty"`
	Area       *string `json:"area,omitempty" bson:"area,omitempty"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Price      float64 `json:"price" bson:"price"`
	TotalPrice float64 `json:"totalPrice" bson:"totalPrice"`
	Department *string `json:"department,omitempty" bson:"department,omitempty"`
	WorkType   *string `json:"workType,omitempty" bson:"workType,omitempty"`
}

// QuotationTotals holds the derived money figures of a quotation.
// Invariant: GrandTotal = GrossAmount - Discount + TaxAmount + FreightInstallationHandling.
type QuotationTotals struct {
	GrossAmount                 float64 `json:"grossAmount" bson:"grossAmount"`
	Discount                    float64 `json:"discount" bson:"discount"`
	TaxAmount                   float64 `json:"taxAmount" bson:"taxAmount"`
	FreightInstallationHandling float64 `json:"freightInstallationHandling" bson:"freightInstallationHandling"`
	GrandTotal                  float64 `json:"grandTotal" bson:"grandTotal"`
}

// Quotation belongs to one project and carries an ordered list of line items
// plus the derived totals record.
type Quotation struct {
	ID          string          `json:"id" bson:"id"`
	ProjectID   string          `json:"projectId" bson:"projectId"`
	SiteAddress *string         `json:"siteAddress,omitempty" bson:"siteAddress,omitempty"`
	Category    *string         `json:"category,omitempty" bson:"category,omitempty"`
	Items       []QuotationItem `json:"items" bson:"items"`
	Totals      QuotationTotals `json:"totals" bson:"totals"`
	Notes       *string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updatedAt"`
}
