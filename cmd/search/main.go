package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/config"
	"github.com/AMRENE5435/marrakech.reviews/internal/searchbox"
	"github.com/AMRENE5435/marrakech.reviews/internal/service"
	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
)

const help = `Type a query and press enter to search.
  :cat <code>   change category (all, restaurants, hotels, attractions, shopping, nightlife)
  :open <n>     open the n-th result
  :close        close the results
  :clear        clear the query
  :quit         exit`

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := tripadvisor.NewClient(cfg.TripAdvisor, logger)
	svc := service.NewService(client, logger)
	opener := searchbox.OpenerFunc(func(url string) error {
		fmt.Printf("open %s\n", url)
		return nil
	})

	box := searchbox.NewBox(ctx, svc, opener, cfg.Search, logger)
	defer box.Close()

	fmt.Println(help)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if !handleLine(box, scanner.Text()) {
			return
		}
		box.Wait()
		render(box.View())
	}
}

// handleLine applies one line of input, returning false to exit
func handleLine(box *searchbox.Box, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch cmd {
	case ":quit":
		return false
	case ":cat":
		if err := box.SetCategory(arg); err != nil {
			fmt.Println(err)
		}
	case ":open":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("usage: :open <n>")
			return true
		}
		if err := box.Select(n - 1); err != nil {
			fmt.Println(err)
		}
	case ":close":
		box.ClickOutside()
	case ":clear":
		box.ClearQuery()
	default:
		box.Input(line)
		box.Enter()
	}
	return true
}

func render(v searchbox.View) {
	if !v.Open {
		return
	}

	switch v.Phase {
	case searchbox.Error:
		fmt.Printf("Search failed: %v\n", v.Err)
		return
	case searchbox.EmptyResults:
		fmt.Printf("No results found for %q\n", v.Query)
		return
	case searchbox.Results:
	default:
		return
	}

	for i, r := range v.Results {
		fmt.Printf("%2d. %s [%s] %s (%s reviews)\n     %s\n", i+1, r.Name, r.Category, r.Rating, r.ReviewCount, r.Address)
	}
	if v.MoreURL != "" {
		fmt.Printf("View all %d results: %s\n", v.Total, v.MoreURL)
	}
}
