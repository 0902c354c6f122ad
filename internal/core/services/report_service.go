package services

import (
	"context"
	"time"

	"embox/internal/adapters/persistence/repositories"
	"embox/internal/core/domain"
	"embox/internal/core/membership"
)

// ReportService computes report rows and totals. Rendering to a file
// format is a collaborator's job (see internal/reports).
type ReportService struct {
	txnRepo      repositories.TransactionRepository
	customerRepo repositories.CustomerRepository
}

// NewReportService creates a new report service
func NewReportService(txnRepo repositories.TransactionRepository, customerRepo repositories.CustomerRepository) *ReportService {
	return &ReportService{
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
	}
}

// FinancialRow is one ledger line in a financial report
type FinancialRow struct {
	Date    string  `json:"date"`
	Type    string  `json:"type"`
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

// FinancialReport holds one month of ledger rows plus totals
type FinancialReport struct {
	Month   string         `json:"month"`
	Rows    []FinancialRow `json:"rows"`
	Income  float64        `json:"income"`
	Expense float64        `json:"expense"`
	Net     float64        `json:"net"`
}

// MemberRow is one customer line in a membership report
type MemberRow struct {
	FullName        string  `json:"full_name"`
	Phone           string  `json:"phone"`
	PlanName        string  `json:"plan_name"`
	InscriptionDate string  `json:"inscription_date"`
	DueDate         string  `json:"due_date"`
	MonthlyFee      float64 `json:"monthly_fee"`
	Status          string  `json:"status"`
	MemberStatus    string  `json:"member_status"`
}

// MembersReport holds annotated customer rows plus per-status counts
type MembersReport struct {
	GeneratedAt string      `json:"generated_at"`
	Rows        []MemberRow `json:"rows"`
	DueToday    int         `json:"due_today"`
	DueTomorrow int         `json:"due_tomorrow"`
	Overdue     int         `json:"overdue"`
	Active      int         `json:"active"`
}

// Financial builds the financial report for a YYYY-MM month
func (s *ReportService) Financial(ctx context.Context, month string) (*FinancialReport, error) {
	txns, err := s.txnRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	report := &FinancialReport{
		Month: month,
		Rows:  make([]FinancialRow, 0, len(txns)),
	}

	for _, txn := range txns {
		report.Rows = append(report.Rows, FinancialRow{
			Date:    txn.Date,
			Type:    txn.Type,
			Concept: txn.Concept,
			Amount:  txn.Amount,
		})

		if txn.Type == domain.TxnIncome {
			report.Income += txn.Amount
		} else {
			report.Expense += txn.Amount
		}
	}

	report.Net = report.Income - report.Expense
	return report, nil
}

// Members builds the membership report against "now". Status is
// computed per row at generation time, never read from storage.
func (s *ReportService) Members(ctx context.Context) (*MembersReport, error) {
	customers, err := s.customerRepo.ListByDueDate(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &MembersReport{
		GeneratedAt: membership.FormatDate(now),
		Rows:        make([]MemberRow, 0, len(customers)),
	}

	for _, customer := range customers {
		row := MemberRow{
			FullName:        customer.FullName,
			Phone:           customer.Phone,
			PlanName:        customer.PlanName,
			InscriptionDate: customer.InscriptionDate,
			DueDate:         customer.DueDate,
			MonthlyFee:      customer.MonthlyFee,
			Status:          customer.Status,
		}

		if status, err := membership.Classify(customer.DueDate, now); err == nil {
			row.MemberStatus = string(status)
			switch status {
			case membership.StatusDueToday:
				report.DueToday++
			case membership.StatusDueTomorrow:
				report.DueTomorrow++
			case membership.StatusOverdue:
				report.Overdue++
			default:
				report.Active++
			}
		}

		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
