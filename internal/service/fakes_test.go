package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
	"github.com/fchanaud/tennis-camp-api/internal/repository"
)

// In-memory repository fakes. They return the same sentinel errors as
// the real repositories so errors.Is behaves identically.

type fakeCampRepo struct {
	camps     map[uint]domain.Camp
	confirmed map[uint]int
	nextID    uint
}

func newFakeCampRepo() *fakeCampRepo {
	return &fakeCampRepo{
		camps:     make(map[uint]domain.Camp),
		confirmed: make(map[uint]int),
	}
}

func (f *fakeCampRepo) Create(_ context.Context, camp domain.Camp) (domain.Camp, error) {
	f.nextID++
	camp.ID = f.nextID
	f.camps[camp.ID] = camp
	return camp, nil
}

func (f *fakeCampRepo) FindByID(_ context.Context, id uint) (domain.Camp, error) {
	camp, ok := f.camps[id]
	if !ok {
		return domain.Camp{}, repository.ErrCampNotFound
	}
	return camp, nil
}

func (f *fakeCampRepo) FindAll(_ context.Context) ([]domain.Camp, error) {
	camps := make([]domain.Camp, 0, len(f.camps))
	for _, c := range f.camps {
		camps = append(camps, c)
	}
	sort.Slice(camps, func(i, j int) bool { return camps[i].ID < camps[j].ID })
	return camps, nil
}

func (f *fakeCampRepo) CountConfirmed(_ context.Context, campID uint) (int, error) {
	return f.confirmed[campID], nil
}

type fakeRegistrationRepo struct {
	regs          map[uint]domain.Registration
	nextID        uint
	full          bool
	statusUpdates map[uint]int
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		regs:          make(map[uint]domain.Registration),
		statusUpdates: make(map[uint]int),
	}
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration domain.Registration, options []domain.RegistrationOption) (domain.Registration, error) {
	if f.full {
		return domain.Registration{}, repository.ErrCampFull
	}

	f.nextID++
	registration.ID = f.nextID
	registration.Options = make([]domain.RegistrationOption, len(options))
	for i, opt := range options {
		opt.ID = uint(i + 1)
		opt.RegistrationID = registration.ID
		registration.Options[i] = opt
	}
	f.regs[registration.ID] = registration
	return registration, nil
}

func (f *fakeRegistrationRepo) FindByID(_ context.Context, id uint) (domain.Registration, error) {
	registration, ok := f.regs[id]
	if !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}
	return registration, nil
}

func (f *fakeRegistrationRepo) Update(_ context.Context, registration domain.Registration, options []domain.RegistrationOption) (domain.Registration, error) {
	if _, ok := f.regs[registration.ID]; !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}

	registration.Options = make([]domain.RegistrationOption, len(options))
	for i, opt := range options {
		opt.ID = uint(i + 1)
		opt.RegistrationID = registration.ID
		registration.Options[i] = opt
	}
	f.regs[registration.ID] = registration
	return registration, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, id uint, status domain.RegistrationStatus) error {
	registration, ok := f.regs[id]
	if !ok {
		return repository.ErrRegistrationNotFound
	}

	registration.Status = status
	f.regs[id] = registration
	f.statusUpdates[id]++
	return nil
}

type fakePaymentRepo struct {
	payments      map[uint]domain.Payment
	nextID        uint
	statusUpdates map[uint]int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:      make(map[uint]domain.Payment),
		statusUpdates: make(map[uint]int),
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	f.nextID++
	payment.ID = f.nextID
	f.payments[payment.ID] = payment
	return payment, nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uint) (domain.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return domain.Payment{}, repository.ErrPaymentNotFound
	}
	return payment, nil
}

func (f *fakePaymentRepo) FindByProviderSessionID(_ context.Context, sessionID string) (domain.Payment, error) {
	for _, p := range f.payments {
		if p.ProviderSessionID == sessionID {
			return p, nil
		}
	}
	return domain.Payment{}, repository.ErrPaymentNotFound
}

func (f *fakePaymentRepo) FindByRegistrationID(_ context.Context, registrationID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	for _, p := range f.payments {
		if p.RegistrationID == registrationID {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id uint, status domain.PaymentStatus) error {
	payment, ok := f.payments[id]
	if !ok {
		return repository.ErrPaymentNotFound
	}

	payment.Status = status
	f.payments[id] = payment
	f.statusUpdates[id]++
	return nil
}

type fakeCheckoutProvider struct {
	lastParams CheckoutParams
	createErr  error
	sessions   map[string]CheckoutSession
	counter    int
}

func newFakeCheckoutProvider() *fakeCheckoutProvider {
	return &fakeCheckoutProvider{
		sessions: make(map[string]CheckoutSession),
	}
}

func (f *fakeCheckoutProvider) CreateCheckoutSession(_ context.Context, params CheckoutParams) (CheckoutSession, error) {
	if f.createErr != nil {
		return CheckoutSession{}, f.createErr
	}

	f.lastParams = params
	f.counter++
	session := CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%v", f.counter),
		URL: fmt.Sprintf("https://checkout.example.com/pay/cs_test_%v", f.counter),
	}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeCheckoutProvider) GetCheckoutSession(_ context.Context, sessionID string) (CheckoutSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return CheckoutSession{}, fmt.Errorf("no such session %q", sessionID)
	}
	return session, nil
}
