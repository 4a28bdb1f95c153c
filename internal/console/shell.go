package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/odyssey-erp/console/internal/purchasing"
)

const shellHelp = `commands:
  list orders|bills [query]     search and list documents
  page <n>                      show page n of the last list
  expand                        toggle order details under converted bills
  show <id>                     print one document
  new order|bill                open the editor on a blank document
  edit <id>                     open the editor on a stored document
  convert <order id>            open a bill drafted from an order
  set <field> <value>           set a form field
  item add                      append a line item
  item set <n> <field> <value>  set productId, productName, quantity or unitPrice
  item product <n> <product id> fill line n from the catalog
  item rm <n>                   remove line n
  attach <path>                 attach a PDF to the bill form
  detach                        remove the bill form's PDF
  payment                       derive payment status from the paid amount
  form                          print the open form
  save                          submit the form
  cancel                        discard the form
  quit                          leave the console`

var errQuit = errors.New("quit")

// Shell is a line-oriented front end to a Session. One editor is open at a
// time; opening the other kind closes the first.
type Shell struct {
	session *Session
	out     io.Writer

	// ReadFile loads attachment files.
	ReadFile func(name string) ([]byte, error)

	kind    purchasing.Kind
	list    purchasing.Kind
	filters ListFilters
	expand  bool
}

// NewShell builds a shell over s.
func NewShell(s *Session) *Shell {
	return &Shell{session: s, ReadFile: os.ReadFile}
}

// Run reads commands from in until EOF, quit or ctx is done.
func (sh *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	sh.out = out
	scanner := bufio.NewScanner(in)
	sh.prompt()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := sh.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			sh.reportError(err)
		}
		sh.prompt()
	}
	return scanner.Err()
}

// Exec runs one command line.
func (sh *Shell) Exec(line string) error {
	if sh.out == nil {
		sh.out = io.Discard
	}
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
		return nil
	case "quit", "exit":
		sh.closeEditors()
		return errQuit
	case "list", "ls":
		return sh.cmdList(rest)
	case "page":
		return sh.cmdPage(rest)
	case "expand":
		sh.expand = !sh.expand
		fmt.Fprintf(sh.out, "expand %v\n", sh.expand)
		return nil
	case "show":
		return sh.cmdShow(rest)
	case "new":
		return sh.cmdNew(rest)
	case "edit":
		return sh.cmdEdit(rest)
	case "convert":
		return sh.cmdConvert(rest)
	case "set":
		return sh.cmdSet(rest)
	case "item":
		return sh.cmdItem(rest)
	case "attach":
		return sh.cmdAttach(rest)
	case "detach":
		if err := sh.billEditor(); err != nil {
			return err
		}
		return sh.session.BillEditor.RemoveAttachment()
	case "payment":
		if err := sh.billEditor(); err != nil {
			return err
		}
		status, err := sh.session.BillEditor.SyncPaymentStatus()
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "paymentStatus %s\n", status.Label())
		return nil
	case "form":
		return sh.printForm()
	case "save":
		return sh.cmdSave()
	case "cancel":
		sh.closeEditors()
		fmt.Fprintln(sh.out, "discarded")
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (sh *Shell) cmdList(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: list orders|bills [query]")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	sh.list = kind
	sh.filters = ListFilters{Page: 1, Search: strings.Join(args[1:], " ")}
	return sh.renderList()
}

func (sh *Shell) cmdPage(args []string) error {
	if sh.list == "" {
		return errors.New("nothing listed yet")
	}
	if len(args) != 1 {
		return errors.New("usage: page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid page %q", args[0])
	}
	sh.filters.Page = n
	return sh.renderList()
}

func (sh *Shell) renderList() error {
	if sh.list == purchasing.KindOrder {
		return sh.session.OrderScreen.Render(sh.out, sh.filters)
	}
	return sh.session.BillScreen.Render(sh.out, sh.filters, sh.expand)
}

func (sh *Shell) cmdShow(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <id>")
	}
	doc, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	return sh.session.View.Render(sh.out, doc)
}

func (sh *Shell) cmdNew(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: new order|bill")
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	sh.closeEditors()
	if kind == purchasing.KindOrder {
		sh.session.OrderEditor.OpenForCreate()
	} else {
		sh.session.BillEditor.OpenForCreate()
	}
	sh.kind = kind
	return sh.printForm()
}

func (sh *Shell) cmdEdit(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: edit <id>")
	}
	doc, err := sh.lookup(args[0])
	if err != nil {
		return err
	}
	sh.closeEditors()
	switch d := doc.(type) {
	case *purchasing.Order:
		sh.session.OrderEditor.OpenForEdit(d)
	case *purchasing.Bill:
		sh.session.BillEditor.OpenForEdit(d)
	}
	sh.kind = doc.Kind()
	return sh.printForm()
}

func (sh *Shell) cmdConvert(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: convert <order id>")
	}
	order, err := sh.session.Orders.Get(normalizeDocID(args[0]))
	if err != nil {
		return err
	}
	sh.closeEditors()
	sh.session.BillEditor.OpenForConversion(order)
	sh.kind = purchasing.KindBill
	return sh.printForm()
}

func (sh *Shell) cmdSet(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: set <field> <value>")
	}
	value := strings.Join(args[1:], " ")
	switch sh.kind {
	case purchasing.KindOrder:
		return sh.session.OrderEditor.SetField(args[0], value)
	case purchasing.KindBill:
		return sh.session.BillEditor.SetField(args[0], value)
	}
	return purchasing.ErrEditorClosed
}

func (sh *Shell) cmdItem(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: item add|set|product|rm")
	}
	ed := sh.lineEditor()
	if ed == nil {
		return purchasing.ErrEditorClosed
	}
	switch args[0] {
	case "add":
		idx, err := ed.AddLineItem()
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "line %d added\n", idx)
		return nil
	case "set":
		if len(args) < 3 {
			return errors.New("usage: item set <n> <field> <value>")
		}
		idx, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return ed.UpdateLineItem(idx, args[2], strings.Join(args[3:], " "))
	case "product":
		if len(args) != 3 {
			return errors.New("usage: item product <n> <product id>")
		}
		idx, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		product, err := sh.session.Catalog.Product(args[2])
		if err != nil {
			return err
		}
		for _, kv := range [][2]string{
			{purchasing.LineFieldProductID, strings.TrimPrefix(product.ID, "#")},
			{purchasing.LineFieldProductName, product.Name},
			{purchasing.LineFieldUnitPrice, product.Price.String()},
		} {
			if err := ed.UpdateLineItem(idx, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	case "rm", "remove":
		if len(args) != 2 {
			return errors.New("usage: item rm <n>")
		}
		idx, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return ed.RemoveLineItem(idx)
	}
	return fmt.Errorf("unknown item command %q", args[0])
}

func (sh *Shell) cmdAttach(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: attach <path>")
	}
	if err := sh.billEditor(); err != nil {
		return err
	}
	data, err := sh.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read attachment: %w", err)
	}
	att, err := sh.session.BillEditor.AttachPDF(filepath.Base(args[0]), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "attached %s (%s bytes)\n", att.FileName, sh.session.Format.Count(int(att.Size)))
	return nil
}

func (sh *Shell) cmdSave() error {
	var (
		doc purchasing.Document
		err error
	)
	switch sh.kind {
	case purchasing.KindOrder:
		doc, err = sh.session.OrderEditor.Submit()
	case purchasing.KindBill:
		doc, err = sh.session.BillEditor.Submit()
	default:
		return purchasing.ErrEditorClosed
	}
	if err != nil {
		return err
	}
	sh.kind = ""
	fmt.Fprintf(sh.out, "saved %s\n", doc.Head().ID)
	return nil
}

func (sh *Shell) printForm() error {
	var (
		doc purchasing.Document
		ok  bool
	)
	switch sh.kind {
	case purchasing.KindOrder:
		doc, ok = sh.session.OrderEditor.Form()
	case purchasing.KindBill:
		doc, ok = sh.session.BillEditor.Form()
	}
	if !ok {
		return purchasing.ErrEditorClosed
	}
	return sh.session.View.Render(sh.out, doc)
}

func (sh *Shell) lookup(id string) (purchasing.Document, error) {
	id = normalizeDocID(id)
	switch {
	case strings.HasPrefix(id, "#"+purchasing.OrderIDPrefix):
		return sh.session.Orders.Get(id)
	case strings.HasPrefix(id, "#"+purchasing.BillIDPrefix):
		return sh.session.Bills.Get(id)
	}
	return nil, fmt.Errorf("%w: %s", purchasing.ErrNotFound, id)
}

// lineItemEditor is the part of an editor the item command drives.
type lineItemEditor interface {
	AddLineItem() (int, error)
	UpdateLineItem(index int, field, value string) error
	RemoveLineItem(index int) error
}

func (sh *Shell) lineEditor() lineItemEditor {
	switch sh.kind {
	case purchasing.KindOrder:
		return sh.session.OrderEditor
	case purchasing.KindBill:
		return sh.session.BillEditor
	}
	return nil
}

func (sh *Shell) billEditor() error {
	if sh.kind != purchasing.KindBill {
		return fmt.Errorf("%w: no bill form open", purchasing.ErrEditorClosed)
	}
	return nil
}

func (sh *Shell) closeEditors() {
	sh.session.OrderEditor.Close()
	sh.session.BillEditor.Close()
	sh.kind = ""
}

func (sh *Shell) prompt() {
	label := "console"
	switch sh.kind {
	case purchasing.KindOrder:
		label = "order:" + sh.session.OrderEditor.State().String()
	case purchasing.KindBill:
		label = "bill:" + sh.session.BillEditor.State().String()
	}
	fmt.Fprintf(sh.out, "%s> ", label)
}

func (sh *Shell) reportError(err error) {
	var verr *purchasing.ValidationError
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		fmt.Fprintln(sh.out, "error: form is invalid")
		for _, f := range fields {
			fmt.Fprintf(sh.out, "  %s: %s\n", f, verr.Fields[f])
		}
		return
	}
	var aerr *purchasing.AttachmentError
	if errors.As(err, &aerr) {
		fmt.Fprintf(sh.out, "error: %s rejected: %s\n", aerr.FileName, aerr.Detail)
		return
	}
	sh.session.Logger.Debug("shell command failed", slog.Any("error", err))
	fmt.Fprintf(sh.out, "error: %v\n", err)
}

func parseKind(s string) (purchasing.Kind, error) {
	switch strings.ToLower(s) {
	case "order", "orders", "po":
		return purchasing.KindOrder, nil
	case "bill", "bills", "pb":
		return purchasing.KindBill, nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid line number %q", s)
	}
	return n, nil
}

// normalizeDocID accepts "po001" for "#PO001".
func normalizeDocID(id string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(id), "#"))
}

// splitArgs splits on whitespace, keeping double-quoted runs together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case (r == ' ' || r == '\t') && !quoted:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}
