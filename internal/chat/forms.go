package chat

import (
	"time"

	"shoestore/internal/domain"
)

// The four canonical form templates. The generator may only reference these
// by name; arbitrary form schemas are not supported.
const (
	FormAppointment    = "APPOINTMENT"
	FormContact        = "CONTACT"
	FormProductInquiry = "PRODUCT_INQUIRY"
	FormDelivery       = "DELIVERY"
)

// FormTemplate resolves a canonical form name (already uppercased by the
// extractor) to its descriptor.
func FormTemplate(name string) (domain.FormDescriptor, bool) {
	switch name {
	case FormAppointment:
		return appointmentForm(), true
	case FormContact:
		return contactForm(), true
	case FormProductInquiry:
		return productInquiryForm(), true
	case FormDelivery:
		return deliveryForm(), true
	}
	return domain.FormDescriptor{}, false
}

// FormConfirmation is the message returned after a valid submission.
func FormConfirmation(name string) string {
	switch name {
	case FormAppointment:
		return "Your appointment has been scheduled! You'll receive a confirmation email shortly with all the details."
	case FormContact:
		return "Your contact information has been saved! We'll be in touch soon."
	case FormProductInquiry:
		return "Thanks for your inquiry! Our team will review your requirements and get back to you within 24 hours."
	case FormDelivery:
		return "Your delivery address has been saved! We'll use this for your order."
	}
	return ""
}

func appointmentForm() domain.FormDescriptor {
	return domain.FormDescriptor{
		Title:       "Book an Appointment",
		Description: "Schedule a time to visit our store or speak with a specialist.",
		Fields: []domain.FormField{
			{ID: "name", Kind: domain.FieldText, Label: "Full Name", Required: true,
				Placeholder: "Enter your full name"},
			{ID: "email", Kind: domain.FieldEmail, Label: "Email Address", Required: true,
				Placeholder: "your.email@example.com"},
			{ID: "phone", Kind: domain.FieldPhone, Label: "Phone Number", Required: true,
				Placeholder: "(555) 123-4567"},
			{ID: "preferred_date", Kind: domain.FieldDate, Label: "Preferred Date", Required: true,
				MinDate: time.Now().Format("2006-01-02")},
			{ID: "preferred_time", Kind: domain.FieldSelect, Label: "Preferred Time", Required: true,
				Options: []string{
					"9:00 AM - 10:00 AM",
					"10:00 AM - 11:00 AM",
					"11:00 AM - 12:00 PM",
					"1:00 PM - 2:00 PM",
					"2:00 PM - 3:00 PM",
					"3:00 PM - 4:00 PM",
					"4:00 PM - 5:00 PM",
				}},
			{ID: "visit_reason", Kind: domain.FieldTextarea, Label: "Reason for Visit", Required: false,
				Placeholder: "What would you like to discuss or see?"},
		},
		SubmitLabel: "Book Appointment",
	}
}

func contactForm() domain.FormDescriptor {
	return domain.FormDescriptor{
		Title:       "Contact Information",
		Description: "Please provide your contact details so we can follow up.",
		Fields: []domain.FormField{
			{ID: "name", Kind: domain.FieldText, Label: "Full Name", Required: true,
				Placeholder: "Enter your full name"},
			{ID: "email", Kind: domain.FieldEmail, Label: "Email Address", Required: true,
				Placeholder: "your.email@example.com"},
			{ID: "phone", Kind: domain.FieldPhone, Label: "Phone Number", Required: false,
				Placeholder: "(555) 123-4567"},
			{ID: "preferred_contact", Kind: domain.FieldSelect, Label: "Preferred Contact Method",
				Required: true, Options: []string{"Email", "Phone", "Text Message"}},
		},
		SubmitLabel: "Save Contact Info",
	}
}

func productInquiryForm() domain.FormDescriptor {
	return domain.FormDescriptor{
		Title:       "Product Inquiry",
		Description: "Tell us more about what you're looking for.",
		Fields: []domain.FormField{
			{ID: "budget", Kind: domain.FieldSelect, Label: "Budget Range", Required: false,
				Options: []string{"Under $50", "$50-$100", "$100-$150", "$150-$200", "$200+"}},
			{ID: "size", Kind: domain.FieldSelect, Label: "Size Needed", Required: false,
				Options: []string{"6", "7", "8", "9", "10", "11", "12", "13", "14"}},
			{ID: "color_preference", Kind: domain.FieldText, Label: "Color Preference", Required: false,
				Placeholder: "Any specific colors you prefer?"},
			{ID: "specific_needs", Kind: domain.FieldTextarea, Label: "Specific Needs or Questions",
				Required: false, Placeholder: "Any specific requirements or questions about this product?"},
		},
		SubmitLabel: "Submit Inquiry",
	}
}

func deliveryForm() domain.FormDescriptor {
	return domain.FormDescriptor{
		Title:       "Delivery Information",
		Description: "Where should we deliver your order?",
		Fields: []domain.FormField{
			{ID: "address_line1", Kind: domain.FieldText, Label: "Street Address", Required: true,
				Placeholder: "123 Main Street"},
			{ID: "address_line2", Kind: domain.FieldText, Label: "Apartment/Suite (Optional)",
				Required: false, Placeholder: "Apt 4B"},
			{ID: "city", Kind: domain.FieldText, Label: "City", Required: true,
				Placeholder: "New York"},
			{ID: "state", Kind: domain.FieldText, Label: "State/Province", Required: true,
				Placeholder: "NY"},
			{ID: "zip_code", Kind: domain.FieldText, Label: "ZIP/Postal Code", Required: true,
				Placeholder: "10001"},
			{ID: "delivery_instructions", Kind: domain.FieldTextarea, Label: "Delivery Instructions",
				Required: false, Placeholder: "Any special delivery instructions?"},
		},
		SubmitLabel: "Save Delivery Address",
	}
}
