package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/config"
	"github.com/aryanbv/folio/internal/output"
	"github.com/aryanbv/folio/internal/store"
)

const inboxPreviewRunes = 60

var inboxLimit int

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List contact-form submissions",
	Long: `Show the contact-form messages received by 'folio serve', newest
first. Messages are read from the local history database.`,
	RunE: runInbox,
}

func init() {
	inboxCmd.Flags().IntVar(&inboxLimit, "limit", 20, "Maximum number of messages to show")
	rootCmd.AddCommand(inboxCmd)
}

func runInbox(cmd *cobra.Command, args []string) error {
	if inboxLimit < 1 {
		return fmt.Errorf("--limit must be positive, got %d", inboxLimit)
	}
	if _, err := loadRuntime(); err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	msgs, err := db.ListContactMessages(inboxLimit)
	if err != nil {
		return fmt.Errorf("listing messages: %w", err)
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		if msgs == nil {
			msgs = []store.ContactMessage{}
		}
		return writeJSON(w, map[string]any{"messages": msgs})
	}

	fmt.Fprintln(w, output.Section(fmt.Sprintf("Inbox (%d)", len(msgs))))
	fmt.Fprintln(w)
	if len(msgs) == 0 {
		fmt.Fprintln(w, " No messages yet.")
		return nil
	}

	now := time.Now()
	tbl := output.NewTable("Received", "From", "Email", "Message")
	for _, m := range msgs {
		tbl.AddRow(output.Since(m.ReceivedAt, now), m.Name, m.Email, preview(m.Message))
	}
	tbl.Fprint(w)
	return nil
}

// preview flattens a message to one line and shortens it.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= inboxPreviewRunes {
		return s
	}
	return string(r[:inboxPreviewRunes-1]) + "…"
}
