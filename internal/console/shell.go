package console

import (
	"bufio"
	"context"
	"fmt"
	"github.com/schollz/progressbar/v3"
	"github.com/umalmyha/customers-console/internal/filter"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/service"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

const shellHelp = `commands:
  list                       show current page of customers
  search key=value ...       filter list, keys: term status min max rate
  clear                      drop filters
  next | prev | page N       navigate pages
  reload                     fetch list from backend
  get ID                     show customer details
  edit ID                    load customer for update
  set key=value ...          change loaded customer, keys: name address principal rate time
  save | reset               submit or drop the update
  add key=value ...          create customer, keys as for set
  delete ID                  delete customer
  ask TEXT                   ask the agent
  quit`

// Shell drives the screens from line based commands
type Shell struct {
	list    *ListScreen
	lookup  *LookupScreen
	update  *UpdateScreen
	add     *AddScreen
	agent   *AgentScreen
	out     io.Writer
	spinner bool
}

func NewShell(customerSvc service.CustomerService, validator formValidator, pageSize int, messageTTL time.Duration, out io.Writer) *Shell {
	return &Shell{
		list:    NewListScreen(customerSvc, pageSize, messageTTL),
		lookup:  NewLookupScreen(customerSvc),
		update:  NewUpdateScreen(customerSvc, validator, messageTTL),
		add:     NewAddScreen(customerSvc, validator, messageTTL),
		agent:   NewAgentScreen(customerSvc),
		out:     out,
		spinner: true,
	}
}

// WithoutSpinner disables progress spinner, e.g. when output is not a terminal
func (sh *Shell) WithoutSpinner() *Shell {
	sh.spinner = false
	return sh
}

// List exposes list screen so the caller can feed it shared cache changes
func (sh *Shell) List() *ListScreen {
	return sh.list
}

// Run reads commands until quit, end of input or ctx is done
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(sh.out, shellHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		if ctx.Err() != nil {
			return nil
		}

		if quit := sh.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs single command, true means the shell must stop
func (sh *Shell) Exec(ctx context.Context, line string) bool {
	cmd, rest := splitCommand(line)

	switch cmd {
	case "":
	case "help":
		fmt.Fprintln(sh.out, shellHelp)
	case "quit", "exit":
		return true
	case "list":
		sh.busy("loading customers", func() { sh.list.Open(ctx, false) })
		sh.printList()
	case "reload":
		sh.busy("loading customers", func() { sh.list.Load(ctx, true) })
		sh.printList()
	case "search":
		sh.list.Search(predicatesOf(parseArgs(rest)))
		sh.printList()
	case "clear":
		sh.list.ClearSearch()
		sh.printList()
	case "next":
		sh.navigate(sh.list.Next())
	case "prev":
		sh.navigate(sh.list.Previous())
	case "page":
		n, err := strconv.Atoi(rest)
		sh.navigate(err == nil && sh.list.GoTo(n))
	case "delete":
		sh.busy("deleting customer", func() { sh.list.Delete(ctx, rest) })
		sh.printList()
	case "get":
		sh.busy("looking customer up", func() { sh.lookup.Search(ctx, rest) })
		sh.printLookup()
	case "edit":
		sh.busy("loading customer", func() { sh.update.Load(ctx, rest) })
		sh.printUpdate()
	case "set":
		form, err := formOf(sh.update.View().Form, parseArgs(rest))
		if err != nil {
			fmt.Fprintln(sh.out, err)
			return false
		}
		sh.update.Edit(form)
		sh.printUpdate()
	case "save":
		sh.busy("saving customer", func() { sh.update.Submit(ctx) })
		sh.printUpdate()
		if sh.update.View().ReloadList {
			sh.busy("loading customers", func() { sh.list.Open(ctx, true) })
		}
	case "reset":
		sh.update.Reset()
		fmt.Fprintln(sh.out, "update form cleared")
	case "add":
		form, err := formOf(model.CustomerForm{}, parseArgs(rest))
		if err != nil {
			fmt.Fprintln(sh.out, err)
			return false
		}
		sh.busy("adding customer", func() { sh.add.Submit(ctx, form) })
		sh.printState(sh.add.State())
	case "ask":
		if sh.agent.Send(ctx, rest) {
			messages := sh.agent.Messages()
			last := messages[len(messages)-1]
			fmt.Fprintf(sh.out, "[%s] %s\n", last.Timestamp.Format(time.Kitchen), last.Text)
		}
	default:
		fmt.Fprintf(sh.out, "unknown command %q, type help\n", cmd)
	}
	return false
}

// Close discards pending completions of every screen
func (sh *Shell) Close() {
	sh.list.Close()
	sh.lookup.Close()
	sh.update.Close()
	sh.add.Close()
	sh.agent.Close()
}

// busy runs fn showing a spinner until it returns
func (sh *Shell) busy(desc string, fn func()) {
	if !sh.spinner {
		fn()
		return
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(sh.out),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	fn()
	close(done)
	_ = bar.Finish()
}

func (sh *Shell) navigate(moved bool) {
	if !moved {
		fmt.Fprintln(sh.out, "no such page")
		return
	}
	sh.printList()
}

func (sh *Shell) printList() {
	v := sh.list.View()
	sh.printState(v.State)

	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRINCIPAL\tRATE\tTIME\tINTEREST\tTOTAL\tSTATUS")
	for _, c := range v.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, amount(c.Principal), amount(c.InterestRate), amount(c.TimePeriod),
			amount(c.InterestAmount), amount(c.TotalAmount), c.Status)
	}
	_ = w.Flush()

	fmt.Fprintf(sh.out, "page %d of %d, %d customers", v.Page, v.TotalPages, v.TotalCount)
	if !v.FetchedAt.IsZero() {
		fmt.Fprintf(sh.out, ", updated %s", v.FetchedAt.Format(time.Kitchen))
	}
	if v.Stale {
		fmt.Fprint(sh.out, ", list changed, type reload")
	}
	fmt.Fprintln(sh.out)
}

func (sh *Shell) printLookup() {
	v := sh.lookup.View()
	sh.printState(v.State)
	if v.Customer == nil {
		return
	}

	c := v.Customer
	fmt.Fprintf(sh.out, "%s (id %s) [%s: %s]\n", c.Name, c.ID, c.Status, v.Tone)
	fmt.Fprintf(sh.out, "address: %s\njoined: %s\n", c.Address, c.JoinDate)
	fmt.Fprintf(sh.out, "principal %s, rate %s%%, time %s, interest %s, total %s\n",
		amount(c.Principal), amount(c.InterestRate), amount(c.TimePeriod), amount(v.Interest), amount(v.Total))
}

func (sh *Shell) printUpdate() {
	v := sh.update.View()
	sh.printState(v.State)
	if v.Customer == nil {
		return
	}

	f := v.Form
	fmt.Fprintf(sh.out, "editing %s: name=%q address=%q principal=%s rate=%s time=%s\n",
		v.Customer.ID, f.Name, f.Address, amount(f.Principal), amount(f.InterestRate), amount(f.TimePeriod))
	fmt.Fprintf(sh.out, "interest %s, total %s", amount(v.Interest), amount(v.Total))
	if v.Unsaved {
		fmt.Fprint(sh.out, " (unsaved)")
	}
	fmt.Fprintln(sh.out)
}

func (sh *Shell) printState(st State) {
	if st.Message != "" {
		fmt.Fprintln(sh.out, st.Message)
	}
}

func amount(v float64) string {
	if !model.Available(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

// parseArgs splits key=value pairs, values may be double quoted to keep spaces
func parseArgs(s string) map[string]string {
	args := make(map[string]string)
	for len(s) > 0 {
		s = strings.TrimLeft(s, " \t")
		key, rest, ok := strings.Cut(s, "=")
		if !ok || strings.ContainsAny(key, " \t") {
			break
		}

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := strings.Index(rest[1:], `"`)
			if end < 0 {
				value, s = rest[1:], ""
			} else {
				value, s = rest[1:end+1], rest[end+2:]
			}
		} else {
			value, s, _ = strings.Cut(rest, " ")
		}
		args[strings.ToLower(key)] = value
	}
	return args
}

func predicatesOf(args map[string]string) filter.Predicates {
	return filter.Predicates{
		Term:            args["term"],
		Status:          args["status"],
		MinPrincipal:    args["min"],
		MaxPrincipal:    args["max"],
		MaxInterestRate: args["rate"],
	}
}

func formOf(form model.CustomerForm, args map[string]string) (model.CustomerForm, error) {
	for key, value := range args {
		switch key {
		case "name":
			form.Name = value
		case "address":
			form.Address = value
		case "principal", "rate", "time":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return form, fmt.Errorf("%s must be a number", key)
			}
			switch key {
			case "principal":
				form.Principal = n
			case "rate":
				form.InterestRate = n
			default:
				form.TimePeriod = n
			}
		default:
			return form, fmt.Errorf("unknown field %q", key)
		}
	}
	return form, nil
}
