package atm

import (
	"fmt"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/atm/inbound"
	"github.com/shandysiswandi/goatm/internal/atm/store"
	"github.com/shandysiswandi/goatm/internal/atm/usecase"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgprompt"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goatm/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Router    *pkgrouter.Router
	Prompt    *pkgprompt.Prompt
	SessionID pkguid.StringID
	TxID      pkguid.NumberID
}

// New builds the account, registers the menu actions and returns the
// controller that runs the session.
func New(dep Dependency) (*inbound.Controller, error) {
	initial, err := dep.Config.GetDecimal("atm.initial_balance")
	if err != nil {
		return nil, err
	}

	minDeposit, err := dep.Config.GetDecimal("atm.min_deposit")
	if err != nil {
		return nil, err
	}

	var creds []entity.Credential
	if err := dep.Config.Unmarshal("atm.credentials", &creds); err != nil {
		return nil, fmt.Errorf("config %q: %w", "atm.credentials", err)
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("config %q: no credentials configured", "atm.credentials")
	}

	ledger, err := store.NewInMemoryLedger(initial)
	if err != nil {
		return nil, err
	}

	credentials, err := store.NewInMemoryCredentials(creds)
	if err != nil {
		return nil, err
	}

	if dep.SessionID == nil {
		dep.SessionID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Ledger:      ledger,
		Credentials: credentials,
		ID:          dep.TxID,
		MinDeposit:  minDeposit,
	})

	inbound.RegisterTerminalEndpoint(dep.Router, uc, dep.Prompt, inbound.Money{Symbol: dep.Config.GetString("atm.currency")})

	return inbound.NewController(uc, dep.Router, dep.Prompt, dep.SessionID), nil
}
