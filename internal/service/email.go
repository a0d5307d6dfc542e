package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWelcome to the stokvel. Your account is ready: you can join a savings group, apply for a loan or activate funeral cover from the app.\n\nBest regards,\nThe Stokvel Team", name)
	return s.send(ctx, email, name, "Welcome to the stokvel", body)
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, name, resetLink string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received a request to reset your password. Use the link below to choose a new one:\n\n%s\n\nIf you did not request this, you can ignore this email.\n\nBest regards,\nThe Stokvel Team", name, resetLink)
	return s.send(ctx, email, name, "Reset your password", body)
}

func (s *emailService) SendLoanDecision(ctx context.Context, email, name string, loan *domain.LoanAccount) error {
	var subject, body string
	switch loan.Status {
	case domain.LoanStatusApproved:
		subject = "Your loan has been approved"
		body = fmt.Sprintf("Hello %s,\n\nYour loan of R%s over %d month(s) has been approved.\n\nTotal repayment: R%s\nMonthly repayment: R%s\n\nBest regards,\nThe Stokvel Team",
			name, loan.Principal.StringFixed(2), loan.TermMonths, loan.TotalRepayment.StringFixed(2), loan.MonthlyRepayment.StringFixed(2))
	case domain.LoanStatusRejected:
		subject = "Your loan application was declined"
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately your loan application of R%s was declined.", name, loan.Principal.StringFixed(2))
		if loan.RejectionReason != "" {
			body += fmt.Sprintf("\n\nReason: %s", loan.RejectionReason)
		}
		body += "\n\nBest regards,\nThe Stokvel Team"
	default:
		return nil
	}
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendLoanSettled(ctx context.Context, email, name string, loan *domain.LoanAccount) error {
	body := fmt.Sprintf("Hello %s,\n\nCongratulations, your loan of R%s is fully paid up. Thank you for settling on time.\n\nBest regards,\nThe Stokvel Team",
		name, loan.Principal.StringFixed(2))
	return s.send(ctx, email, name, "Loan settled", body)
}

func (s *emailService) SendContributionReminder(ctx context.Context, email, name string, m *domain.StokvelMembership) error {
	body := fmt.Sprintf("Hello %s,\n\nA friendly reminder that your next stokvel contribution of R%s is due on %s.\n\nBest regards,\nThe Stokvel Team",
		name, m.MonthlyContribution.StringFixed(2), m.NextContributionDate.Format("2006-01-02"))
	return s.send(ctx, email, name, "Stokvel contribution reminder", body)
}

func (s *emailService) SendLoanPaymentReminder(ctx context.Context, email, name string, loan *domain.LoanAccount) error {
	body := fmt.Sprintf("Hello %s,\n\nYour monthly loan repayment of R%s is coming up. Outstanding balance: R%s.\n\nBest regards,\nThe Stokvel Team",
		name, loan.MonthlyRepayment.StringFixed(2), loan.RemainingBalance.StringFixed(2))
	return s.send(ctx, email, name, "Loan repayment reminder", body)
}
