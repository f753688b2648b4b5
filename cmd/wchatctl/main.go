package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/client"
	"github.com/matheus3301/wchat/internal/config"
	"github.com/matheus3301/wchat/internal/lock"
	"github.com/matheus3301/wchat/internal/profile"
)

// env is what every command runs against.
type env struct {
	client  *client.Client
	cfg     *config.Config
	logger  *zap.Logger
	profile string
	account string
	json    bool
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e *env, args []string) error
	// stream commands run until interrupted instead of under the default timeout.
	stream bool
}

var commands = []command{
	{name: "register", usage: "register <name> <email> <password>", run: cmdRegister},
	{name: "login", usage: "login <email> <password>", run: cmdLogin},
	{name: "logout", usage: "logout", run: cmdLogout},
	{name: "whoami", usage: "whoami", run: cmdWhoAmI},
	{name: "users", usage: "users", run: cmdUsers},
	{name: "friends", usage: "friends [--search <text>]", run: cmdFriends},
	{name: "unread", usage: "unread", run: cmdUnread},
	{name: "thread", usage: "thread [--all] [--read] <peer-uid>", run: cmdThread},
	{name: "send", usage: "send [--file <path>] <peer-uid> [text]", run: cmdSend},
	{name: "watch", usage: "watch", run: cmdWatch, stream: true},
}

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	accountFlag := flag.String("account", "", "account name within the profile")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	_ = godotenv.Load()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	cmd, ok := lookup(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	profileName := profile.Resolve(*profileFlag)
	account := profile.ResolveAccount(*accountFlag)
	for _, name := range []string{profileName, account} {
		if err := profile.ValidateName(name); err != nil {
			fatal(err)
		}
	}
	cfg, err := config.Resolve(profile.ConfigPath())
	if err != nil {
		fatal(err)
	}

	marker := client.NewMarkerFile(profile.AccountPath(profileName, account))
	c, err := client.Dial(profile.SocketPath(profileName), marker, zap.NewNop())
	if err != nil {
		fatal(fmt.Errorf("cannot connect to daemon for profile %q: %w", profileName, err))
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if !cmd.stream {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	if err := ensureDaemon(ctx, c, profileName); err != nil {
		fatal(err)
	}

	e := &env{client: c, cfg: cfg, logger: zap.NewNop(), profile: profileName, account: account, json: *jsonFlag}
	if err := cmd.run(ctx, e, args[1:]); err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// ensureDaemon probes the daemon and, when it does not answer, uses the
// profile lock to tell a stopped daemon from a stuck one.
func ensureDaemon(ctx context.Context, c *client.Client, profileName string) error {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	err := c.Probe(probeCtx)
	if err == nil {
		return nil
	}
	pid, held, lockErr := lock.Holder(profile.Dir(profileName))
	switch {
	case lockErr != nil:
		return fmt.Errorf("%w (lock check failed: %v)", err, lockErr)
	case held:
		return fmt.Errorf("daemon for profile %q (pid %d) is not responding: %w", profileName, pid, err)
	default:
		return fmt.Errorf("daemon not running for profile %q; start it with: wchatd --profile %s", profileName, profileName)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: wchatctl [--profile <name>] [--account <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %s\n", c.usage)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
