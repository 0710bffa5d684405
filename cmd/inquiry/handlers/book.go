package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

// Book runs the booking wizard until the booking is confirmed or the user aborts.
func Book(ctx context.Context, conn *Connection, search *domain.SearchParams) error {
	log := conn.logger()
	client := conn.client(log)
	packages := catalog.NewCatalog(client, 0, nil, log)
	wz := wizard.NewService(packages, client, nil, log)

	wz.Start(ctx, search)

	for {
		st := wz.State()
		if st.ActiveStep.IsTerminal() {
			fmt.Print(renderConfirmation(st.Confirmation))
			return nil
		}

		fmt.Print(renderStepHeader(st.ActiveStep))

		nav, err := runStep(ctx, wz, st)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println(dimStyle.Render("Inquiry cancelled"))
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// ошибка значения поля: шаг показывается снова с теми же данными
			fmt.Print(renderError(err))
			continue
		}

		if err := navigate(ctx, wz, nav); err != nil {
			fmt.Print(renderError(err))
		}
	}
}

// runStep shows the form of the active step and applies its values.
func runStep(ctx context.Context, wz *wizard.Service, st wizard.State) (action, error) {
	var nav action

	switch st.ActiveStep {
	case domain.StepCustomerInfo:
		f := customerFormFrom(st.CustomerInfo)
		if err := customerInfoForm(&f, &nav).RunWithContext(ctx); err != nil {
			return nav, err
		}
		return nav, wz.UpdateCustomerInfo(f.patch())

	case domain.StepReservationDetails:
		snap := wz.RefreshCatalog(ctx)
		f := reservationFormFrom(st.ReservationDetails)
		today := domain.DateOf(time.Now())
		if err := reservationDetailsForm(&f, snap, today, &nav).RunWithContext(ctx); err != nil {
			return nav, err
		}
		patch, err := f.patch()
		if err != nil {
			return nav, err
		}
		if err := wz.UpdateReservation(patch); err != nil {
			return nav, err
		}
		if total := wz.State().TotalAmount; total > 0 {
			fmt.Println(dimStyle.Render("Total so far: " + formatAmount(total)))
		}
		return nav, nil

	case domain.StepOtherOptions:
		f := optionsFormFrom(st.OtherOptions)
		if err := otherOptionsForm(&f, domain.DateOf(time.Now()), &nav).RunWithContext(ctx); err != nil {
			return nav, err
		}
		return nav, wz.UpdateOptions(f.patch())
	}

	return nav, fmt.Errorf("unexpected step %s", st.ActiveStep)
}

func navigate(ctx context.Context, wz *wizard.Service, nav action) error {
	switch nav {
	case actionBack:
		_, err := wz.Back()
		return err
	case actionRestart:
		wz.Restart()
		return nil
	default:
		if wz.ActiveStep() == domain.StepOtherOptions {
			fmt.Println(dimStyle.Render("Submitting booking..."))
		}
		_, err := wz.Next(ctx)
		return err
	}
}
