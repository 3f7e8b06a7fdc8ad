// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package docs

// =============================================================================
// RIDER PROFILES
// =============================================================================

// Profile identifies a discount-card category.
type Profile string

const (
	ProfileDisabled Profile = "discapacitado"
	ProfileStudent  Profile = "estudiante"
	ProfileSenior   Profile = "adulto_mayor"
)

// Profiles returns every profile in menu order.
func Profiles() []Profile {
	return []Profile{ProfileDisabled, ProfileSenior, ProfileStudent}
}

// DisplayName returns the card name shown on the procedures menu.
func (p Profile) DisplayName() string {
	switch p {
	case ProfileDisabled:
		return "Tarjeta Discapacitado"
	case ProfileStudent:
		return "Tarjeta Estudiante"
	case ProfileSenior:
		return "Tarjeta Adulto Mayor"
	default:
		return string(p)
	}
}

// Valid reports whether p names a known profile.
func (p Profile) Valid() bool {
	switch p {
	case ProfileDisabled, ProfileStudent, ProfileSenior:
		return true
	}
	return false
}

// requiredDocuments maps each profile to its checklist. Order matters:
// the kiosk renders the labels exactly as listed, and the back office
// reviews them in the same order.
var requiredDocuments = map[Profile][]string{
	ProfileDisabled: {
		"Acta de nacimiento", "CURP", "INE",
		"Tarjeta DIF", "Foto Tamaño Infantil (Color)",
		"Comprobante de domicilio",
	},
	ProfileStudent: {
		"Acta de nacimiento", "CURP", "INE",
		"Comprobante de Estudios", "Credencial Escolar",
		"Comprobante de domicilio",
	},
	ProfileSenior: {
		"Acta de nacimiento", "CURP", "INE",
		"Tarjeta INAPAM", "Comprobante de domicilio",
	},
}

// DocumentsFor returns the ordered checklist for a profile, nil for an
// unknown one. The returned slice is a copy.
func DocumentsFor(p Profile) []string {
	labels, ok := requiredDocuments[p]
	if !ok {
		return nil
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// ReactivationDocs returns the extra labels requested when a rider is
// reactivating an expired card rather than applying fresh. Seniors
// renew through a separate counter, so only disabled and student cards
// carry one.
func ReactivationDocs(p Profile) []string {
	switch p {
	case ProfileDisabled, ProfileStudent:
		return []string{"Tarjeta YOVOY"}
	default:
		return nil
	}
}
