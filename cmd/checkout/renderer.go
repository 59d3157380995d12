package main

import (
	"fmt"
	"io"
	"sync"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

// terminalRenderer prints the checkout screens as plain text. Status lines
// are only printed when the status changes, and never after Close.
type terminalRenderer struct {
	mu         sync.Mutex
	out        io.Writer
	successURL string
	last       entities.PaymentStatus
	closed     bool
}

var _ interfaces.ICheckoutRenderer = (*terminalRenderer)(nil)

func newTerminalRenderer(out io.Writer, successURL string) *terminalRenderer {
	return &terminalRenderer{out: out, successURL: successURL}
}

func (r *terminalRenderer) ShowPix(rec entities.PaymentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "\nPIX copia e cola (%s):\n\n%s\n\n", rec.Gateway, rec.PixCode)
	fmt.Fprintf(r.out, "Transação %s aguardando pagamento...\n", rec.ID)
	r.last = rec.Status
}

func (r *terminalRenderer) ShowStatus(rec entities.PaymentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || rec.Status == r.last {
		return
	}
	r.last = rec.Status
	fmt.Fprintf(r.out, "Status: %s\n", rec.Status)
}

func (r *terminalRenderer) Redirect(rec entities.PaymentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "Pagamento confirmado! R$ %s\n", rec.Amount.StringFixed(2))
	if r.successURL != "" {
		fmt.Fprintf(r.out, "Acesse: %s\n", r.successURL)
	}
}

func (r *terminalRenderer) ShowNotPaid(rec entities.PaymentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "Pagamento não concluído (%s). Gere um novo PIX para tentar novamente.\n", rec.Status)
}

func (r *terminalRenderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}
