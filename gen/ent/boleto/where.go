// Code generated by ent, DO NOT EDIT.

package boleto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brpayflow/boleto-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldCompanyID, v))
}

// Recipient applies equality check predicate on the "recipient" field. It's identical to RecipientEQ.
func Recipient(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldRecipient, v))
}

// Drawee applies equality check predicate on the "drawee" field. It's identical to DraweeEQ.
func Drawee(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDrawee, v))
}

// DocumentDate applies equality check predicate on the "document_date" field. It's identical to DocumentDateEQ.
func DocumentDate(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDocumentDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDueDate, v))
}

// DocumentAmount applies equality check predicate on the "document_amount" field. It's identical to DocumentAmountEQ.
func DocumentAmount(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDocumentAmount, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldAmount, v))
}

// Discount applies equality check predicate on the "discount" field. It's identical to DiscountEQ.
func Discount(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDiscount, v))
}

// InterestAndFines applies equality check predicate on the "interest_and_fines" field. It's identical to InterestAndFinesEQ.
func InterestAndFines(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldInterestAndFines, v))
}

// Barcode applies equality check predicate on the "barcode" field. It's identical to BarcodeEQ.
func Barcode(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldBarcode, v))
}

// GuideNumber applies equality check predicate on the "guide_number" field. It's identical to GuideNumberEQ.
func GuideNumber(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldGuideNumber, v))
}

// PixQrCodeText applies equality check predicate on the "pix_qr_code_text" field. It's identical to PixQrCodeTextEQ.
func PixQrCodeText(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldPixQrCodeText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldStatus, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldFileName, v))
}

// Comments applies equality check predicate on the "comments" field. It's identical to CommentsEQ.
func Comments(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldComments, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldCompanyID, vs...))
}

// RecipientEQ applies the EQ predicate on the "recipient" field.
func RecipientEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldRecipient, v))
}

// RecipientNEQ applies the NEQ predicate on the "recipient" field.
func RecipientNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldRecipient, v))
}

// RecipientIn applies the In predicate on the "recipient" field.
func RecipientIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldRecipient, vs...))
}

// RecipientNotIn applies the NotIn predicate on the "recipient" field.
func RecipientNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldRecipient, vs...))
}

// RecipientGT applies the GT predicate on the "recipient" field.
func RecipientGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldRecipient, v))
}

// RecipientGTE applies the GTE predicate on the "recipient" field.
func RecipientGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldRecipient, v))
}

// RecipientLT applies the LT predicate on the "recipient" field.
func RecipientLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldRecipient, v))
}

// RecipientLTE applies the LTE predicate on the "recipient" field.
func RecipientLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldRecipient, v))
}

// RecipientContains applies the Contains predicate on the "recipient" field.
func RecipientContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldRecipient, v))
}

// RecipientHasPrefix applies the HasPrefix predicate on the "recipient" field.
func RecipientHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldRecipient, v))
}

// RecipientHasSuffix applies the HasSuffix predicate on the "recipient" field.
func RecipientHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldRecipient, v))
}

// RecipientIsNil applies the IsNil predicate on the "recipient" field.
func RecipientIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldRecipient))
}

// RecipientNotNil applies the NotNil predicate on the "recipient" field.
func RecipientNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldRecipient))
}

// RecipientEqualFold applies the EqualFold predicate on the "recipient" field.
func RecipientEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldRecipient, v))
}

// RecipientContainsFold applies the ContainsFold predicate on the "recipient" field.
func RecipientContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldRecipient, v))
}

// DraweeEQ applies the EQ predicate on the "drawee" field.
func DraweeEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDrawee, v))
}

// DraweeNEQ applies the NEQ predicate on the "drawee" field.
func DraweeNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldDrawee, v))
}

// DraweeIn applies the In predicate on the "drawee" field.
func DraweeIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldDrawee, vs...))
}

// DraweeNotIn applies the NotIn predicate on the "drawee" field.
func DraweeNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldDrawee, vs...))
}

// DraweeGT applies the GT predicate on the "drawee" field.
func DraweeGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldDrawee, v))
}

// DraweeGTE applies the GTE predicate on the "drawee" field.
func DraweeGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldDrawee, v))
}

// DraweeLT applies the LT predicate on the "drawee" field.
func DraweeLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldDrawee, v))
}

// DraweeLTE applies the LTE predicate on the "drawee" field.
func DraweeLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldDrawee, v))
}

// DraweeContains applies the Contains predicate on the "drawee" field.
func DraweeContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldDrawee, v))
}

// DraweeHasPrefix applies the HasPrefix predicate on the "drawee" field.
func DraweeHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldDrawee, v))
}

// DraweeHasSuffix applies the HasSuffix predicate on the "drawee" field.
func DraweeHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldDrawee, v))
}

// DraweeIsNil applies the IsNil predicate on the "drawee" field.
func DraweeIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldDrawee))
}

// DraweeNotNil applies the NotNil predicate on the "drawee" field.
func DraweeNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldDrawee))
}

// DraweeEqualFold applies the EqualFold predicate on the "drawee" field.
func DraweeEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldDrawee, v))
}

// DraweeContainsFold applies the ContainsFold predicate on the "drawee" field.
func DraweeContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldDrawee, v))
}

// DocumentDateEQ applies the EQ predicate on the "document_date" field.
func DocumentDateEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDocumentDate, v))
}

// DocumentDateNEQ applies the NEQ predicate on the "document_date" field.
func DocumentDateNEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldDocumentDate, v))
}

// DocumentDateIn applies the In predicate on the "document_date" field.
func DocumentDateIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldDocumentDate, vs...))
}

// DocumentDateNotIn applies the NotIn predicate on the "document_date" field.
func DocumentDateNotIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldDocumentDate, vs...))
}

// DocumentDateGT applies the GT predicate on the "document_date" field.
func DocumentDateGT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldDocumentDate, v))
}

// DocumentDateGTE applies the GTE predicate on the "document_date" field.
func DocumentDateGTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldDocumentDate, v))
}

// DocumentDateLT applies the LT predicate on the "document_date" field.
func DocumentDateLT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldDocumentDate, v))
}

// DocumentDateLTE applies the LTE predicate on the "document_date" field.
func DocumentDateLTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldDocumentDate, v))
}

// DocumentDateIsNil applies the IsNil predicate on the "document_date" field.
func DocumentDateIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldDocumentDate))
}

// DocumentDateNotNil applies the NotNil predicate on the "document_date" field.
func DocumentDateNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldDocumentDate))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldDueDate))
}

// DocumentAmountEQ applies the EQ predicate on the "document_amount" field.
func DocumentAmountEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDocumentAmount, v))
}

// DocumentAmountNEQ applies the NEQ predicate on the "document_amount" field.
func DocumentAmountNEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldDocumentAmount, v))
}

// DocumentAmountIn applies the In predicate on the "document_amount" field.
func DocumentAmountIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldDocumentAmount, vs...))
}

// DocumentAmountNotIn applies the NotIn predicate on the "document_amount" field.
func DocumentAmountNotIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldDocumentAmount, vs...))
}

// DocumentAmountGT applies the GT predicate on the "document_amount" field.
func DocumentAmountGT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldDocumentAmount, v))
}

// DocumentAmountGTE applies the GTE predicate on the "document_amount" field.
func DocumentAmountGTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldDocumentAmount, v))
}

// DocumentAmountLT applies the LT predicate on the "document_amount" field.
func DocumentAmountLT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldDocumentAmount, v))
}

// DocumentAmountLTE applies the LTE predicate on the "document_amount" field.
func DocumentAmountLTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldDocumentAmount, v))
}

// DocumentAmountIsNil applies the IsNil predicate on the "document_amount" field.
func DocumentAmountIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldDocumentAmount))
}

// DocumentAmountNotNil applies the NotNil predicate on the "document_amount" field.
func DocumentAmountNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldDocumentAmount))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldAmount, v))
}

// DiscountEQ applies the EQ predicate on the "discount" field.
func DiscountEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldDiscount, v))
}

// DiscountNEQ applies the NEQ predicate on the "discount" field.
func DiscountNEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldDiscount, v))
}

// DiscountIn applies the In predicate on the "discount" field.
func DiscountIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldDiscount, vs...))
}

// DiscountNotIn applies the NotIn predicate on the "discount" field.
func DiscountNotIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldDiscount, vs...))
}

// DiscountGT applies the GT predicate on the "discount" field.
func DiscountGT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldDiscount, v))
}

// DiscountGTE applies the GTE predicate on the "discount" field.
func DiscountGTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldDiscount, v))
}

// DiscountLT applies the LT predicate on the "discount" field.
func DiscountLT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldDiscount, v))
}

// DiscountLTE applies the LTE predicate on the "discount" field.
func DiscountLTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldDiscount, v))
}

// DiscountIsNil applies the IsNil predicate on the "discount" field.
func DiscountIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldDiscount))
}

// DiscountNotNil applies the NotNil predicate on the "discount" field.
func DiscountNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldDiscount))
}

// InterestAndFinesEQ applies the EQ predicate on the "interest_and_fines" field.
func InterestAndFinesEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldInterestAndFines, v))
}

// InterestAndFinesNEQ applies the NEQ predicate on the "interest_and_fines" field.
func InterestAndFinesNEQ(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldInterestAndFines, v))
}

// InterestAndFinesIn applies the In predicate on the "interest_and_fines" field.
func InterestAndFinesIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldInterestAndFines, vs...))
}

// InterestAndFinesNotIn applies the NotIn predicate on the "interest_and_fines" field.
func InterestAndFinesNotIn(vs ...float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldInterestAndFines, vs...))
}

// InterestAndFinesGT applies the GT predicate on the "interest_and_fines" field.
func InterestAndFinesGT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldInterestAndFines, v))
}

// InterestAndFinesGTE applies the GTE predicate on the "interest_and_fines" field.
func InterestAndFinesGTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldInterestAndFines, v))
}

// InterestAndFinesLT applies the LT predicate on the "interest_and_fines" field.
func InterestAndFinesLT(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldInterestAndFines, v))
}

// InterestAndFinesLTE applies the LTE predicate on the "interest_and_fines" field.
func InterestAndFinesLTE(v float64) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldInterestAndFines, v))
}

// InterestAndFinesIsNil applies the IsNil predicate on the "interest_and_fines" field.
func InterestAndFinesIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldInterestAndFines))
}

// InterestAndFinesNotNil applies the NotNil predicate on the "interest_and_fines" field.
func InterestAndFinesNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldInterestAndFines))
}

// BarcodeEQ applies the EQ predicate on the "barcode" field.
func BarcodeEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldBarcode, v))
}

// BarcodeNEQ applies the NEQ predicate on the "barcode" field.
func BarcodeNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldBarcode, v))
}

// BarcodeIn applies the In predicate on the "barcode" field.
func BarcodeIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldBarcode, vs...))
}

// BarcodeNotIn applies the NotIn predicate on the "barcode" field.
func BarcodeNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldBarcode, vs...))
}

// BarcodeGT applies the GT predicate on the "barcode" field.
func BarcodeGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldBarcode, v))
}

// BarcodeGTE applies the GTE predicate on the "barcode" field.
func BarcodeGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldBarcode, v))
}

// BarcodeLT applies the LT predicate on the "barcode" field.
func BarcodeLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldBarcode, v))
}

// BarcodeLTE applies the LTE predicate on the "barcode" field.
func BarcodeLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldBarcode, v))
}

// BarcodeContains applies the Contains predicate on the "barcode" field.
func BarcodeContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldBarcode, v))
}

// BarcodeHasPrefix applies the HasPrefix predicate on the "barcode" field.
func BarcodeHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldBarcode, v))
}

// BarcodeHasSuffix applies the HasSuffix predicate on the "barcode" field.
func BarcodeHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldBarcode, v))
}

// BarcodeEqualFold applies the EqualFold predicate on the "barcode" field.
func BarcodeEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldBarcode, v))
}

// BarcodeContainsFold applies the ContainsFold predicate on the "barcode" field.
func BarcodeContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldBarcode, v))
}

// GuideNumberEQ applies the EQ predicate on the "guide_number" field.
func GuideNumberEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldGuideNumber, v))
}

// GuideNumberNEQ applies the NEQ predicate on the "guide_number" field.
func GuideNumberNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldGuideNumber, v))
}

// GuideNumberIn applies the In predicate on the "guide_number" field.
func GuideNumberIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldGuideNumber, vs...))
}

// GuideNumberNotIn applies the NotIn predicate on the "guide_number" field.
func GuideNumberNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldGuideNumber, vs...))
}

// GuideNumberGT applies the GT predicate on the "guide_number" field.
func GuideNumberGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldGuideNumber, v))
}

// GuideNumberGTE applies the GTE predicate on the "guide_number" field.
func GuideNumberGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldGuideNumber, v))
}

// GuideNumberLT applies the LT predicate on the "guide_number" field.
func GuideNumberLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldGuideNumber, v))
}

// GuideNumberLTE applies the LTE predicate on the "guide_number" field.
func GuideNumberLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldGuideNumber, v))
}

// GuideNumberContains applies the Contains predicate on the "guide_number" field.
func GuideNumberContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldGuideNumber, v))
}

// GuideNumberHasPrefix applies the HasPrefix predicate on the "guide_number" field.
func GuideNumberHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldGuideNumber, v))
}

// GuideNumberHasSuffix applies the HasSuffix predicate on the "guide_number" field.
func GuideNumberHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldGuideNumber, v))
}

// GuideNumberIsNil applies the IsNil predicate on the "guide_number" field.
func GuideNumberIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldGuideNumber))
}

// GuideNumberNotNil applies the NotNil predicate on the "guide_number" field.
func GuideNumberNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldGuideNumber))
}

// GuideNumberEqualFold applies the EqualFold predicate on the "guide_number" field.
func GuideNumberEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldGuideNumber, v))
}

// GuideNumberContainsFold applies the ContainsFold predicate on the "guide_number" field.
func GuideNumberContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldGuideNumber, v))
}

// PixQrCodeTextEQ applies the EQ predicate on the "pix_qr_code_text" field.
func PixQrCodeTextEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldPixQrCodeText, v))
}

// PixQrCodeTextNEQ applies the NEQ predicate on the "pix_qr_code_text" field.
func PixQrCodeTextNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldPixQrCodeText, v))
}

// PixQrCodeTextIn applies the In predicate on the "pix_qr_code_text" field.
func PixQrCodeTextIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldPixQrCodeText, vs...))
}

// PixQrCodeTextNotIn applies the NotIn predicate on the "pix_qr_code_text" field.
func PixQrCodeTextNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldPixQrCodeText, vs...))
}

// PixQrCodeTextGT applies the GT predicate on the "pix_qr_code_text" field.
func PixQrCodeTextGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldPixQrCodeText, v))
}

// PixQrCodeTextGTE applies the GTE predicate on the "pix_qr_code_text" field.
func PixQrCodeTextGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldPixQrCodeText, v))
}

// PixQrCodeTextLT applies the LT predicate on the "pix_qr_code_text" field.
func PixQrCodeTextLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldPixQrCodeText, v))
}

// PixQrCodeTextLTE applies the LTE predicate on the "pix_qr_code_text" field.
func PixQrCodeTextLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldPixQrCodeText, v))
}

// PixQrCodeTextContains applies the Contains predicate on the "pix_qr_code_text" field.
func PixQrCodeTextContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldPixQrCodeText, v))
}

// PixQrCodeTextHasPrefix applies the HasPrefix predicate on the "pix_qr_code_text" field.
func PixQrCodeTextHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldPixQrCodeText, v))
}

// PixQrCodeTextHasSuffix applies the HasSuffix predicate on the "pix_qr_code_text" field.
func PixQrCodeTextHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldPixQrCodeText, v))
}

// PixQrCodeTextIsNil applies the IsNil predicate on the "pix_qr_code_text" field.
func PixQrCodeTextIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldPixQrCodeText))
}

// PixQrCodeTextNotNil applies the NotNil predicate on the "pix_qr_code_text" field.
func PixQrCodeTextNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldPixQrCodeText))
}

// PixQrCodeTextEqualFold applies the EqualFold predicate on the "pix_qr_code_text" field.
func PixQrCodeTextEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldPixQrCodeText, v))
}

// PixQrCodeTextContainsFold applies the ContainsFold predicate on the "pix_qr_code_text" field.
func PixQrCodeTextContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldPixQrCodeText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldStatus, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldFileName, v))
}

// CommentsEQ applies the EQ predicate on the "comments" field.
func CommentsEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldComments, v))
}

// CommentsNEQ applies the NEQ predicate on the "comments" field.
func CommentsNEQ(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldComments, v))
}

// CommentsIn applies the In predicate on the "comments" field.
func CommentsIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldComments, vs...))
}

// CommentsNotIn applies the NotIn predicate on the "comments" field.
func CommentsNotIn(vs ...string) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldComments, vs...))
}

// CommentsGT applies the GT predicate on the "comments" field.
func CommentsGT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldComments, v))
}

// CommentsGTE applies the GTE predicate on the "comments" field.
func CommentsGTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldComments, v))
}

// CommentsLT applies the LT predicate on the "comments" field.
func CommentsLT(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldComments, v))
}

// CommentsLTE applies the LTE predicate on the "comments" field.
func CommentsLTE(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldComments, v))
}

// CommentsContains applies the Contains predicate on the "comments" field.
func CommentsContains(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContains(FieldComments, v))
}

// CommentsHasPrefix applies the HasPrefix predicate on the "comments" field.
func CommentsHasPrefix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasPrefix(FieldComments, v))
}

// CommentsHasSuffix applies the HasSuffix predicate on the "comments" field.
func CommentsHasSuffix(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldHasSuffix(FieldComments, v))
}

// CommentsIsNil applies the IsNil predicate on the "comments" field.
func CommentsIsNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldIsNull(FieldComments))
}

// CommentsNotNil applies the NotNil predicate on the "comments" field.
func CommentsNotNil() predicate.Boleto {
	return predicate.Boleto(sql.FieldNotNull(FieldComments))
}

// CommentsEqualFold applies the EqualFold predicate on the "comments" field.
func CommentsEqualFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldEqualFold(FieldComments, v))
}

// CommentsContainsFold applies the ContainsFold predicate on the "comments" field.
func CommentsContainsFold(v string) predicate.Boleto {
	return predicate.Boleto(sql.FieldContainsFold(FieldComments, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Boleto {
	return predicate.Boleto(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Boleto {
	return predicate.Boleto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Boleto {
	return predicate.Boleto(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Boleto {
	return predicate.Boleto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.BoletoFile) predicate.Boleto {
	return predicate.Boleto(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Boleto {
	return predicate.Boleto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Boleto {
	return predicate.Boleto(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Boleto) predicate.Boleto {
	return predicate.Boleto(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Boleto) predicate.Boleto {
	return predicate.Boleto(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Boleto) predicate.Boleto {
	return predicate.Boleto(sql.NotPredicates(p))
}
