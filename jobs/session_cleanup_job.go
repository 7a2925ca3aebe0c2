package jobs

import (
	"log"

	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/services"
)

func PurgeExpiredSessions() {
	log.Println("Running job: PurgeExpiredSessions...")

	purged, err := services.PurgeExpiredSessions(database.DB)
	if err != nil {
		log.Printf("Error purging expired sessions: %v", err)
		return
	}

	if purged == 0 {
		log.Println("No expired sessions found.")
		return
	}

	log.Printf("Purged %d expired session(s).", purged)
}
