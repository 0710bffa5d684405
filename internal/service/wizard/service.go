package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
)

// Исходы переходов для метрик
const (
	outcomeAdvanced  = "advanced"
	outcomeRejected  = "rejected"
	outcomeBack      = "back"
	outcomeRestarted = "restarted"
	outcomeSubmitted = "submitted"
	outcomeFailed    = "failed"

	submissionSuccess = "success"
	submissionFailure = "failure"
)

// предел ожидания ответа booking API на отправку, не зависящий от клиента
const submitTimeout = 30 * time.Second

// Service контроллер визарда одной сессии.
// Все изменения состояния идут под мьютексом, сетевые вызовы (загрузка каталога,
// отправка заявки) выполняются вне блокировки.
type Service struct {
	catalog      PackageCatalog
	submitter    BookingSubmitter
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger

	mu           sync.Mutex
	store        *Store
	selected     *domain.PackageOption
	submitting   bool
	submitErr    error
	confirmation *domain.BookingConfirmation
	generation   uint64

	// ключ повторной отправки: один на неизменную заявку
	idempotencyKey   string
	keyedFingerprint []byte
}

// NewService создает контроллер с пустым состоянием на первом шаге
func NewService(packages PackageCatalog, submitter BookingSubmitter, metrics MetricsRecorder, logger Logger) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		catalog:      packages,
		submitter:    submitter,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		store:        NewStore(),
	}
}

// Start начинает новую заявку: сбрасывает состояние, применяет предзаполнение
// из поиска на главной и подгружает каталог. Ошибка каталога не мешает первому шагу.
func (s *Service) Start(ctx context.Context, search *domain.SearchParams) {
	s.mu.Lock()
	s.reset(search)
	s.mu.Unlock()

	s.RefreshCatalog(ctx)
}

// RefreshCatalog загружает каталог, если он еще не загружен или устарел
func (s *Service) RefreshCatalog(ctx context.Context) catalog.Snapshot {
	if err := s.catalog.EnsureLoaded(ctx); err != nil {
		s.logger.Warn("Wizard.RefreshCatalog: catalog unavailable: %v", err)
	}
	return s.catalog.Snapshot()
}

// Restart сбрасывает все данные заявки. Единственный выход из шага подтверждения.
func (s *Service) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.store.ActiveStep()
	s.reset(nil)
	s.metrics.ObserveTransition(from.String(), outcomeRestarted)
	s.logger.Info("Wizard.Restart: restarted from step %s", from)
}

// State возвращает снимок состояния для отображения
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := s.store.ActiveStep()
	customerTouched, reservationTouched := s.store.Touched()
	reservation := s.store.ReservationDetails()
	total, _ := domain.TotalAmount(s.selected, reservation.AddOns)

	st := State{
		ActiveStep:         step,
		CustomerInfo:       s.store.CustomerInfo(),
		ReservationDetails: reservation,
		OtherOptions:       s.store.OtherOptions(),
		CustomerTouched:    customerTouched,
		ReservationTouched: reservationTouched,
		FieldErrors:        s.store.FieldErrors(step),
		Catalog:            s.catalog.Snapshot(),
		SelectedPackage:    clonePackage(s.selected),
		TotalAmount:        total,
		Submitting:         s.submitting,
		Confirmation:       cloneConfirmation(s.confirmation),
	}
	if s.submitErr != nil {
		st.SubmissionError = s.submitErr.Error()
	}
	return st
}

func (s *Service) ActiveStep() domain.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ActiveStep()
}

// FieldErrors поля шага, которые надо подсветить: тронуты и пустые
func (s *Service) FieldErrors(step domain.Step) []domain.Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.FieldErrors(step)
}

// SetField обновляет одно поле. packageType выбирается через каталог.
func (s *Service) SetField(field domain.Field, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return err
	}
	if field == domain.FieldPackageType {
		return s.selectPackage(raw)
	}
	if err := s.store.SetField(field, raw, s.today()); err != nil {
		return err
	}
	s.store.Touch(field)
	return nil
}

// Touch помечает поле как посещенное (blur в форме)
func (s *Service) Touch(field domain.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Touch(field)
}

// UpdateCustomerInfo применяет частичное обновление шага customer-info.
// Обновление атомарно: при ошибке в любом поле состояние не меняется.
func (s *Service) UpdateCustomerInfo(patch CustomerInfoPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return err
	}
	return s.apply(patch.values())
}

// UpdateReservation применяет частичное обновление шага reservation-details
func (s *Service) UpdateReservation(patch ReservationPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return err
	}

	var pkg *domain.PackageOption
	if patch.PackageType != nil && strings.TrimSpace(*patch.PackageType) != "" {
		found, err := s.lookupPackage(strings.TrimSpace(*patch.PackageType))
		if err != nil {
			return err
		}
		pkg = found
	}

	values := patch.values()
	if patch.PackageType != nil {
		values = append(values, fieldValue{field: domain.FieldPackageType, raw: *patch.PackageType})
	}
	if err := s.apply(values); err != nil {
		return err
	}
	if patch.PackageType != nil {
		s.selected = pkg
	}
	return nil
}

// UpdateOptions применяет частичное обновление шага other-options
func (s *Service) UpdateOptions(patch OptionsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return err
	}
	return s.apply(patch.values())
}

// ToggleAddOn добавляет или убирает add-on. Возвращает, выбран ли он после операции.
func (s *Service) ToggleAddOn(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return false, err
	}
	return s.store.ToggleAddOn(id)
}

// SelectPackage выбирает пакет из уже загруженного каталога, без сетевых вызовов
func (s *Service) SelectPackage(id string) (*domain.PackageOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEditable(); err != nil {
		return nil, err
	}
	if err := s.selectPackage(id); err != nil {
		return nil, err
	}
	return clonePackage(s.selected), nil
}

// SelectedPackage выбранный пакет или nil
func (s *Service) SelectedPackage() *domain.PackageOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePackage(s.selected)
}

// Next валидирует текущий шаг и переходит к следующему.
// На шаге other-options переход означает отправку заявки в booking API.
func (s *Service) Next(ctx context.Context) (domain.Step, error) {
	payload, gen, step, err := s.prepareNext()
	if payload == nil {
		return step, err
	}

	// Отключение клиента не прерывает отправку: заявка может сохраниться без подтверждения
	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), submitTimeout)
	defer cancel()

	resp, err := s.submitter.SubmitBooking(submitCtx, payload)
	return s.settleSubmission(gen, payload, resp, err)
}

// Back возвращает на предыдущий шаг без валидации и без потери данных
func (s *Service) Back() (domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := s.store.ActiveStep()
	switch {
	case s.submitting:
		return step, ErrSubmissionInProgress
	case step.IsTerminal():
		return step, ErrWizardCompleted
	case step == domain.StepCustomerInfo:
		return step, ErrAtFirstStep
	}

	prev := s.store.Retreat()
	s.metrics.ObserveTransition(step.String(), outcomeBack)
	return prev, nil
}

// Confirmation данные подтвержденного бронирования
func (s *Service) Confirmation() (*domain.BookingConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.confirmation == nil {
		return nil, ErrNotConfirmed
	}
	return cloneConfirmation(s.confirmation), nil
}

// SubmissionError ошибка последней отправки, nil если ее не было или она была успешной
func (s *Service) SubmissionError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitErr
}

// prepareNext выполняет валидацию и, если нужна отправка, собирает payload
// и выставляет флаг отправки. payload == nil означает, что отправки не будет.
func (s *Service) prepareNext() (*domain.BookingPayload, uint64, domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := s.store.ActiveStep()
	if step.IsTerminal() {
		return nil, 0, step, ErrWizardCompleted
	}
	if s.submitting {
		return nil, 0, step, ErrSubmissionInProgress
	}

	res := s.store.Validate(step)
	if !res.Valid {
		s.metrics.ObserveTransition(step.String(), outcomeRejected)
		s.logger.Warn("Wizard.Next: step %s has missing fields: %v", step, res.Missing)
		return nil, 0, step, res.Err()
	}

	if step != domain.StepOtherOptions {
		next := s.store.Advance()
		s.metrics.ObserveTransition(step.String(), outcomeAdvanced)
		return nil, 0, next, nil
	}

	// Перед отправкой перепроверяем предыдущие шаги: их могли изменить после перехода
	for _, prev := range []domain.Step{domain.StepCustomerInfo, domain.StepReservationDetails} {
		if r := s.store.Validate(prev); !r.Valid {
			s.metrics.ObserveTransition(step.String(), outcomeRejected)
			s.logger.Warn("Wizard.Next: step %s became invalid: %v", prev, r.Missing)
			return nil, 0, step, r.Err()
		}
	}

	payload := s.buildPayload()
	s.assignIdempotencyKey(payload)
	s.submitting = true
	s.submitErr = nil
	return payload, s.generation, step, nil
}

func (s *Service) settleSubmission(gen uint64, payload *domain.BookingPayload, resp *bookingapi.SubmitResponse, err error) (domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Warn("Wizard.Next: session restarted during submission, result dropped (err=%v)", err)
		return s.store.ActiveStep(), ErrSubmissionDiscarded
	}
	s.submitting = false

	if err != nil {
		s.submitErr = err
		s.metrics.ObserveTransition(domain.StepOtherOptions.String(), outcomeFailed)
		s.metrics.ObserveSubmission(submissionFailure)
		s.logger.Error("Wizard.Next: failed to submit booking: %v", err)
		return s.store.ActiveStep(), fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.confirmation = buildConfirmation(payload, resp, s.timeProvider)
	step := s.store.Advance()
	s.metrics.ObserveTransition(domain.StepOtherOptions.String(), outcomeSubmitted)
	s.metrics.ObserveSubmission(submissionSuccess)
	s.logger.Info("Wizard.Next: booking %s confirmed, total=%.2f", s.confirmation.BookingID, s.confirmation.TotalAmount)
	return step, nil
}

// buildPayload собирает заявку из трех шагов и считает итоговую сумму
func (s *Service) buildPayload() *domain.BookingPayload {
	reservation := s.store.ReservationDetails()

	known, unknown := domain.NormalizeAddOns(reservation.AddOns)
	if len(unknown) > 0 {
		s.logger.Warn("Wizard.buildPayload: unknown add-ons dropped: %v", unknown)
	}
	reservation.AddOns = known

	pkg := s.resolvePackage(reservation.PackageType)
	if pkg == nil {
		s.logger.Warn("Wizard.buildPayload: package %q is not in the catalog, total excludes base price", reservation.PackageType)
	}

	total, _ := domain.TotalAmount(pkg, reservation.AddOns)

	return &domain.BookingPayload{
		CustomerInfo:       s.store.CustomerInfo(),
		ReservationDetails: reservation,
		OtherOptions:       s.store.OtherOptions(),
		PackageDetails:     pkg,
		TotalAmount:        total,
	}
}

// assignIdempotencyKey повтор той же заявки идет с прежним ключом, измененная получает новый
func (s *Service) assignIdempotencyKey(payload *domain.BookingPayload) {
	payload.IdempotencyKey = ""
	fingerprint, err := json.Marshal(payload)
	if err != nil || s.idempotencyKey == "" || !bytes.Equal(fingerprint, s.keyedFingerprint) {
		s.idempotencyKey = uuid.NewString()
		s.keyedFingerprint = fingerprint
	}
	payload.IdempotencyKey = s.idempotencyKey
}

func buildConfirmation(payload *domain.BookingPayload, resp *bookingapi.SubmitResponse, tp TimeProvider) *domain.BookingConfirmation {
	now := tp.Now()
	conf := &domain.BookingConfirmation{
		BookingID:          resp.BookingID,
		CustomerInfo:       payload.CustomerInfo,
		ReservationDetails: payload.ReservationDetails,
		OtherOptions:       payload.OtherOptions,
		Package:            payload.PackageDetails,
		TotalAmount:        payload.TotalAmount,
		Status:             resp.Status,
		CreatedAt:          &now,
	}

	// Сервер - источник истины для суммы; локальная используется только как запасная
	if resp.TotalAmount != nil {
		conf.TotalAmount = *resp.TotalAmount
	}
	if conf.Status == "" {
		conf.Status = domain.StatusPending
	}
	if resp.CustomerInfo != nil {
		conf.CustomerInfo = *resp.CustomerInfo
	}
	if resp.ReservationDetails != nil {
		conf.ReservationDetails = resp.ReservationDetails.Clone()
	}
	if resp.OtherOptions != nil {
		conf.OtherOptions = *resp.OtherOptions
	}
	if resp.PackageDetails != nil {
		conf.Package = clonePackage(resp.PackageDetails)
	}
	return conf
}

// resolvePackage ищет пакет в каталоге, при недоступном каталоге берет запомненный при выборе
func (s *Service) resolvePackage(id string) *domain.PackageOption {
	if id == "" {
		return nil
	}
	if pkg, err := s.catalog.Lookup(id); err == nil {
		return pkg
	}
	if s.selected != nil && s.selected.ID == id {
		return clonePackage(s.selected)
	}
	return nil
}

func (s *Service) selectPackage(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		s.selected = nil
		_ = s.store.SetField(domain.FieldPackageType, "", s.today())
		s.store.Touch(domain.FieldPackageType)
		return nil
	}

	pkg, err := s.lookupPackage(id)
	if err != nil {
		return err
	}
	_ = s.store.SetField(domain.FieldPackageType, id, s.today())
	s.store.Touch(domain.FieldPackageType)
	s.selected = pkg
	return nil
}

func (s *Service) lookupPackage(id string) (*domain.PackageOption, error) {
	pkg, err := s.catalog.Lookup(id)
	if err == nil {
		return pkg, nil
	}

	switch {
	case errors.Is(err, catalog.ErrNotLoaded):
		return nil, ErrCatalogNotLoaded
	case errors.Is(err, catalog.ErrNoPackages):
		return nil, ErrNoPackagesAvailable
	case errors.Is(err, catalog.ErrPackageNotFound):
		s.logger.Warn("Wizard.SelectPackage: package %q not found", id)
		return nil, fmt.Errorf("%w: %q", ErrPackageNotFound, id)
	default:
		return nil, fmt.Errorf("%w: %v", ErrNoPackagesAvailable, err)
	}
}

// apply применяет значения к копии хранилища и фиксирует ее только при успехе
func (s *Service) apply(values []fieldValue) error {
	next := *s.store
	next.reservation = s.store.reservation.Clone()

	today := s.today()
	for _, v := range values {
		if err := next.SetField(v.field, v.raw, today); err != nil {
			return err
		}
		next.Touch(v.field)
	}

	*s.store = next
	return nil
}

func (s *Service) checkEditable() error {
	if s.store.ActiveStep().IsTerminal() {
		return ErrWizardCompleted
	}
	if s.submitting {
		return ErrSubmissionInProgress
	}
	return nil
}

// reset сбрасывает сессию; вызывается под блокировкой
func (s *Service) reset(search *domain.SearchParams) {
	s.store.Reset()
	s.selected = nil
	s.submitting = false
	s.submitErr = nil
	s.confirmation = nil
	s.generation++
	s.idempotencyKey = ""
	s.keyedFingerprint = nil

	var params domain.SearchParams
	if search != nil {
		params = *search
	}
	for _, f := range s.store.Prefill(params, s.today()) {
		s.logger.Warn("Wizard.Start: ignoring invalid search value for %s (search=%+v)", f, params)
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.timeProvider.Now())
}

func clonePackage(p *domain.PackageOption) *domain.PackageOption {
	if p == nil {
		return nil
	}
	out := *p
	out.Services = append([]string(nil), p.Services...)
	out.Techniques = append([]string(nil), p.Techniques...)
	return &out
}

func cloneConfirmation(c *domain.BookingConfirmation) *domain.BookingConfirmation {
	if c == nil {
		return nil
	}
	out := *c
	out.ReservationDetails = c.ReservationDetails.Clone()
	out.Package = clonePackage(c.Package)
	return &out
}
