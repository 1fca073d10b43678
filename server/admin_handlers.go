package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// adminAccountRow is the diagnostic view of an account. The password hash
// stays behind the store's trust boundary and never reaches this type.
type adminAccountRow struct {
	ID        int64
	Email     string
	CreatedAt string
}

type adminAccountsPage struct {
	AppName  string
	Email    string
	Accounts []adminAccountRow
}

// AdminAccountsHandler renders the operator-facing account listing:
// id, email, and creation time in insertion order.
func (s *Server) AdminAccountsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("admin_accounts.html")
	if err != nil {
		panic("Failed to parse admin accounts template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())

		list, err := s.accountRepo.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("admin: listing accounts failed")
			http.Error(w, "Account store unavailable", http.StatusServiceUnavailable)
			return
		}

		rows := make([]adminAccountRow, 0, len(list))
		for _, account := range list {
			rows = append(rows, adminAccountRow{
				ID:        account.ID,
				Email:     account.Email,
				CreatedAt: account.CreatedAt.Format(time.RFC3339),
			})
		}

		data := adminAccountsPage{
			AppName:  s.config.AppName,
			Email:    session.Email,
			Accounts: rows,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}
