package booking

import (
	"bytes"
	"fmt"
	"strings"
	"travel/internal/flight"

	"github.com/jung-kurt/gofpdf"
)

// RenderConfirmation produces the printable confirmation of a submitted draft.
func RenderConfirmation(draft *Draft) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Booking Confirmation", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Reference "+draft.Reference, "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking")
	row("Booking ID", fmt.Sprintf("%d", draft.ID))
	row("Type", strings.ToUpper(string(draft.Kind)))
	row("Total", fmt.Sprintf("%.2f %s", draft.Price, draft.Currency))
	if draft.SubmittedAt != nil {
		row("Submitted", draft.SubmittedAt.Format("02 Jan 2006, 15:04 UTC"))
	}
	pdf.Ln(4)

	switch {
	case draft.Flight != nil:
		sectionHeader("Outbound")
		directionRows(row, draft.Flight.Outbound)
		if draft.Flight.Return != nil {
			pdf.Ln(2)
			sectionHeader("Return")
			directionRows(row, *draft.Flight.Return)
		}
	case draft.Hotel != nil:
		sectionHeader("Hotel")
		row("Hotel", draft.Hotel.HotelName)
		row("Room", draft.Hotel.RoomName)
		row("Check-in", draft.Hotel.CheckIn)
		row("Check-out", draft.Hotel.CheckOut)
		row("Rooms", fmt.Sprintf("%d", draft.Hotel.Rooms))
	}
	pdf.Ln(4)

	sectionHeader("Travellers")
	for i, g := range draft.Guests {
		row(fmt.Sprintf("%d. %s", i+1, g.Type), strings.TrimSpace(strings.ToUpper(g.Title)+" "+g.FirstName+" "+g.LastName))
	}
	if draft.Contact != nil {
		pdf.Ln(2)
		row("Email", draft.Contact.Email)
		row("Phone", strings.TrimSpace(draft.Contact.CountryCode+" "+draft.Contact.Phone))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render confirmation: %w", err)
	}
	return buf.Bytes(), nil
}

func directionRows(row func(label, value string), d flight.Direction) {
	for _, leg := range d.Legs {
		row(leg.CarrierName+" "+leg.FlightNumber,
			fmt.Sprintf("%s %s -> %s %s",
				leg.Departure.Airport, leg.Departure.Datetime.Format("02 Jan 15:04"),
				leg.Arrival.Airport, leg.Arrival.Datetime.Format("02 Jan 15:04"),
			))
	}
	for _, fare := range d.Fares[:min(1, len(d.Fares))] {
		if fare.CheckedBaggage != "" {
			row("Checked baggage", fare.CheckedBaggage)
		}
		if fare.CabinBaggage != "" {
			row("Cabin baggage", fare.CabinBaggage)
		}
	}
}
