package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/backyard/internal/emailrelay"
)

// Contact form texts.
const (
	contactSuccessText = "Thank you! Your message has been sent."
	contactFailureText = "Sorry, there was an error sending your message. Please try again."
	sendLabel          = "Send Message"
	sendingLabel       = "Sending..."
)

type contactField int

const (
	fieldName contactField = iota
	fieldEmail
	fieldMessage
	fieldSubmit
	contactFieldCount
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeFailure
)

// contactForm validates and relays messages to the site owner.
type contactForm struct {
	ctx    context.Context
	sender emailrelay.Sender

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   contactField
	active  bool

	errors     contactErrors
	submitting bool

	notice      string
	noticeKind  noticeKind
	noticeID    int
	noticeDelay time.Duration
}

type contactOptions struct {
	Context context.Context
	Sender  emailrelay.Sender
	// NoticeDelay overrides how long the status notice stays up.
	NoticeDelay time.Duration
}

func newContactForm(opts contactOptions) contactForm {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	delay := opts.NoticeDelay
	if delay <= 0 {
		delay = NoticeDuration
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "Tell us about your backyard visitors..."
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetHeight(5)

	return contactForm{
		ctx:         ctx,
		sender:      opts.Sender,
		name:        name,
		email:       email,
		message:     message,
		noticeDelay: delay,
	}
}

// capturing reports whether the form owns the keyboard.
func (f contactForm) capturing() bool {
	return f.active
}

// Activate gives the form keyboard focus on the current field.
func (f *contactForm) Activate() tea.Cmd {
	f.active = true
	return f.focusField(f.focus)
}

// Deactivate returns keyboard focus to the page.
func (f *contactForm) Deactivate() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) focusField(field contactField) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *contactForm) handleKey(msg tea.KeyMsg, keys keyMap) (tea.Cmd, bool) {
	if !f.active {
		if key.Matches(msg, keys.Focus) {
			return f.Activate(), true
		}
		if key.Matches(msg, keys.Submit) {
			return f.Submit(), true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Escape):
		f.Deactivate()
		return nil, true
	case key.Matches(msg, keys.NextField):
		return f.focusField(contactField(wrapIndex(int(f.focus)+1, int(contactFieldCount)))), true
	case key.Matches(msg, keys.PrevField):
		return f.focusField(contactField(wrapIndex(int(f.focus)-1, int(contactFieldCount)))), true
	case key.Matches(msg, keys.Submit):
		return f.Submit(), true
	case key.Matches(msg, keys.Confirm) && f.focus == fieldSubmit:
		return f.Submit(), true
	case key.Matches(msg, keys.Confirm) && f.focus < fieldMessage:
		return f.focusField(f.focus + 1), true
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd, true
}

// Submit validates and, when valid, sends. Submits while a send is in
// flight are ignored.
func (f *contactForm) Submit() tea.Cmd {
	if f.submitting {
		return nil
	}
	f.errors = validateContact(f.name.Value(), f.email.Value(), f.message.Value())
	if !f.errors.Valid() {
		return nil
	}

	f.submitting = true
	f.notice = ""
	f.noticeKind = noticeNone
	return sendContactCmd(f.ctx, f.sender, emailrelay.Message{
		FromName:  strings.TrimSpace(f.name.Value()),
		FromEmail: strings.TrimSpace(f.email.Value()),
		Body:      strings.TrimSpace(f.message.Value()),
	})
}

// Update applies send results, notice expiry and cursor blinks.
func (f *contactForm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case contactSentMsg:
		f.submitting = false
		f.noticeID++
		if msg.err != nil {
			log.Printf("contact: send failed: %v", msg.err)
			f.notice = contactFailureText
			f.noticeKind = noticeFailure
		} else {
			log.Printf("contact: message sent")
			f.notice = contactSuccessText
			f.noticeKind = noticeSuccess
			f.reset()
		}
		return noticeTimerCmd(f.noticeID, f.noticeDelay)

	case noticeExpiredMsg:
		if msg.id == f.noticeID {
			f.notice = ""
			f.noticeKind = noticeNone
		}
		return nil

	case tea.KeyMsg:
		return nil
	}

	if !f.active {
		return nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.name, cmd = f.name.Update(msg)
	cmds = append(cmds, cmd)
	f.email, cmd = f.email.Update(msg)
	cmds = append(cmds, cmd)
	f.message, cmd = f.message.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.errors = contactErrors{}
	f.focus = fieldName
	if f.active {
		f.focusField(fieldName)
	}
}

func (f *contactForm) setWidth(width int) {
	w := clamp(width-6, 20, 72)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// Render draws the form.
func (f contactForm) Render(th Theme, width int) string {
	styles := th.Styles()
	var b strings.Builder

	b.WriteString(styles.Heading.Render("Get in Touch"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Spotted something unusual? Have a question about the feeders? Send a note."))
	b.WriteString("\n\n")

	field := func(label string, which contactField, view, errText string) {
		b.WriteString(styles.Text.Render(label))
		b.WriteString("\n")
		box := styles.Field
		if f.active && f.focus == which {
			box = styles.FieldFocus
		}
		b.WriteString(box.Render(view))
		b.WriteString("\n")
		if errText != "" {
			b.WriteString(styles.DangerText.Render(errText))
			b.WriteString("\n")
		}
	}
	field("Name", fieldName, f.name.View(), f.errors.Name)
	field("Email", fieldEmail, f.email.View(), f.errors.Email)
	field("Message", fieldMessage, f.message.View(), f.errors.Message)

	b.WriteString("\n")
	switch {
	case f.submitting:
		b.WriteString(styles.Button.Faint(true).Render(sendingLabel))
	case f.active && f.focus == fieldSubmit:
		b.WriteString(styles.ButtonFocus.Render(sendLabel))
	default:
		b.WriteString(styles.Button.Render(sendLabel))
	}
	b.WriteString("\n")

	switch f.noticeKind {
	case noticeSuccess:
		b.WriteString("\n" + styles.SuccessText.Render(f.notice) + "\n")
	case noticeFailure:
		b.WriteString("\n" + styles.DangerText.Render(f.notice) + "\n")
	}

	b.WriteString("\n")
	if f.active {
		b.WriteString(styles.FaintText.Render("tab next field · ctrl+s send · esc done"))
	} else {
		b.WriteString(styles.FaintText.Render("enter to write a message"))
	}
	return b.String()
}
