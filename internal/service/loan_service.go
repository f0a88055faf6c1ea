package service

import (
	"context"
	"errors"
	"time"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"gorm.io/gorm"
)

// paidHistoryLimit caps the settled-loans list on the loans page.
const paidHistoryLimit = 10

type LoanService interface {
	Create(ctx context.Context, ownerID uint, req dto.CreateLoanRequest) (*dto.LoanResponse, error)
	List(ctx context.Context, ownerID uint) (*dto.LoanListResponse, error)
	// MarkPaid is idempotent: marking an already-paid loan paid again is a
	// no-op, not an error. There is no reverse transition.
	MarkPaid(ctx context.Context, ownerID, loanID uint) error
	Delete(ctx context.Context, ownerID, loanID uint) error
	Get(ctx context.Context, ownerID, loanID uint) (*model.Loan, error)
}

type loanService struct {
	repo repository.LoanRepository
}

func NewLoanService(repo repository.LoanRepository) LoanService {
	return &loanService{repo: repo}
}

func (s *loanService) Create(ctx context.Context, ownerID uint, req dto.CreateLoanRequest) (*dto.LoanResponse, error) {
	if req.Amount.IsNegative() {
		return nil, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	loan := &model.Loan{
		CustomerName: req.CustomerName,
		ProductTaken: req.ProductTaken,
		Amount:       req.Amount,
		PhoneNumber:  req.PhoneNumber,
		DateAdded:    time.Now(),
		Status:       model.LoanUnpaid,
		UserID:       ownerID,
	}
	if err := s.repo.Create(ctx, loan); err != nil {
		return nil, err
	}
	resp := loanToResponse(loan)
	return &resp, nil
}

func (s *loanService) List(ctx context.Context, ownerID uint) (*dto.LoanListResponse, error) {
	unpaid, err := s.repo.ListUnpaidByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.ListPaidByOwner(ctx, ownerID, paidHistoryLimit)
	if err != nil {
		return nil, err
	}
	resp := &dto.LoanListResponse{
		Unpaid:  make([]dto.LoanResponse, 0, len(unpaid)),
		History: make([]dto.LoanResponse, 0, len(history)),
	}
	for i := range unpaid {
		resp.Unpaid = append(resp.Unpaid, loanToResponse(&unpaid[i]))
	}
	for i := range history {
		resp.History = append(resp.History, loanToResponse(&history[i]))
	}
	return resp, nil
}

func (s *loanService) MarkPaid(ctx context.Context, ownerID, loanID uint) error {
	loan, err := s.Get(ctx, ownerID, loanID)
	if err != nil {
		return err
	}
	if loan.Status == model.LoanPaid {
		return nil
	}
	return s.repo.SetStatus(ctx, loan.ID, model.LoanPaid)
}

func (s *loanService) Delete(ctx context.Context, ownerID, loanID uint) error {
	loan, err := s.Get(ctx, ownerID, loanID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, loan.ID)
}

func (s *loanService) Get(ctx context.Context, ownerID, loanID uint) (*model.Loan, error) {
	loan, err := s.repo.FindByIDForOwner(ctx, loanID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loan, nil
}

func loanToResponse(l *model.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:           l.ID,
		CustomerName: l.CustomerName,
		ProductTaken: l.ProductTaken,
		Amount:       l.Amount,
		PhoneNumber:  l.PhoneNumber,
		DateAdded:    l.DateAdded.Format("2006-01-02 15:04"),
		Status:       l.Status,
	}
}
