// Terminal client for the persona chat API. It owns its own transcript:
// conversations are kept per persona under the data directory and restored
// on startup and on every persona switch, exactly like the web client's
// local storage.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"persona-ai/internal/chat"
	"persona-ai/internal/config"
	"persona-ai/internal/markdown"
	"persona-ai/internal/persona"
	"persona-ai/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.NewClient()

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to init conversation store: %v", err)
	}

	mgr := chat.NewManager(store, chat.NewAPIClient(cfg.ServerURL), persona.HiteshSir)

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Println(boldGreen("Persona AI"))
	fmt.Println("Choose your mentor:")
	for _, p := range persona.All() {
		fmt.Printf("  %s — %s, %s\n", boldCyan(p.ID), p.Name, p.Title)
	}
	fmt.Println("Commands: /persona <id>, /clear, /quit")
	fmt.Println()

	printTranscript(mgr)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		active := persona.Lookup(mgr.Active())
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "/quit" || trimmed == "exit":
			return
		case trimmed == "/clear":
			if err := mgr.Clear(); err != nil {
				fmt.Println(warn("failed to clear conversation: " + err.Error()))
			} else {
				fmt.Println("Conversation cleared.")
			}
			continue
		case strings.HasPrefix(trimmed, "/persona"):
			arg := persona.ID(strings.TrimSpace(strings.TrimPrefix(trimmed, "/persona")))
			if !persona.Valid(arg) {
				fmt.Println(warn(fmt.Sprintf("unknown persona %q", arg)))
				continue
			}
			if arg != mgr.Active() {
				mgr.Switch(arg)
				fmt.Printf("Now chatting with %s.\n\n", persona.Lookup(arg).Name)
				printTranscript(mgr)
			}
			continue
		case trimmed == "":
			// empty input is silently ignored
			continue
		}

		if mgr.State() == chat.StateRateLimited {
			fmt.Println(warn(fmt.Sprintf("Rate limited. Wait %ds before sending.", int(mgr.ResetIn().Round(time.Second)/time.Second))))
			continue
		}

		fmt.Println(boldCyan(active.Name + " is thinking..."))
		if err := mgr.Send(context.Background(), line); err != nil {
			fmt.Println(warn(err.Error()))
			continue
		}

		msgs := mgr.Messages()
		if len(msgs) > 0 {
			last := msgs[len(msgs)-1]
			fmt.Printf("%s %s\n\n", boldCyan(active.Name+":"),
				markdown.AssistantPalette().Sprint(markdown.Render(last.Content)))
		}
	}
}

// printTranscript replays the restored conversation with the same
// user/assistant styling asymmetry as the web view.
func printTranscript(mgr *chat.Manager) {
	msgs := mgr.Messages()
	if len(msgs) == 0 {
		fmt.Println("Start a conversation.")
		fmt.Println()
		return
	}
	name := persona.Lookup(mgr.Active()).Name
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	for _, m := range msgs {
		if m.Role == storage.RoleUser {
			fmt.Printf("%s %s\n", boldGreen("You:"), markdown.UserPalette().Sprint(markdown.Render(m.Content)))
		} else {
			fmt.Printf("%s %s\n", boldCyan(name+":"), markdown.AssistantPalette().Sprint(markdown.Render(m.Content)))
		}
	}
	fmt.Println()
}
