// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: boletos/v1/boletos.proto

package boletosv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Company struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Company) Reset() {
	*x = Company{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Company) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Company) ProtoMessage() {}

func (x *Company) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Company.ProtoReflect.Descriptor instead.
func (*Company) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{0}
}

func (x *Company) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Company) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Company) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Company) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Boleto struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId        string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Recipient        *string                `protobuf:"bytes,3,opt,name=recipient,proto3,oneof" json:"recipient,omitempty"`
	Drawee           *string                `protobuf:"bytes,4,opt,name=drawee,proto3,oneof" json:"drawee,omitempty"`
	DocumentDate     *string                `protobuf:"bytes,5,opt,name=document_date,json=documentDate,proto3,oneof" json:"document_date,omitempty"` // YYYY-MM-DD
	DueDate          *string                `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3,oneof" json:"due_date,omitempty"`                // YYYY-MM-DD
	DocumentAmount   *float64               `protobuf:"fixed64,7,opt,name=document_amount,json=documentAmount,proto3,oneof" json:"document_amount,omitempty"`
	Amount           float64                `protobuf:"fixed64,8,opt,name=amount,proto3" json:"amount,omitempty"`
	Discount         *float64               `protobuf:"fixed64,9,opt,name=discount,proto3,oneof" json:"discount,omitempty"`
	InterestAndFines *float64               `protobuf:"fixed64,10,opt,name=interest_and_fines,json=interestAndFines,proto3,oneof" json:"interest_and_fines,omitempty"`
	Barcode          string                 `protobuf:"bytes,11,opt,name=barcode,proto3" json:"barcode,omitempty"`
	GuideNumber      *string                `protobuf:"bytes,12,opt,name=guide_number,json=guideNumber,proto3,oneof" json:"guide_number,omitempty"`
	PixQrCodeText    *string                `protobuf:"bytes,13,opt,name=pix_qr_code_text,json=pixQrCodeText,proto3,oneof" json:"pix_qr_code_text,omitempty"`
	Status           string                 `protobuf:"bytes,14,opt,name=status,proto3" json:"status,omitempty"` // TO_PAY | VERIFYING | PAID
	FileName         string                 `protobuf:"bytes,15,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Comments         *string                `protobuf:"bytes,16,opt,name=comments,proto3,oneof" json:"comments,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt        string                 `protobuf:"bytes,18,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Boleto) Reset() {
	*x = Boleto{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Boleto) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Boleto) ProtoMessage() {}

func (x *Boleto) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Boleto.ProtoReflect.Descriptor instead.
func (*Boleto) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{1}
}

func (x *Boleto) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Boleto) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Boleto) GetRecipient() string {
	if x != nil && x.Recipient != nil {
		return *x.Recipient
	}
	return ""
}

func (x *Boleto) GetDrawee() string {
	if x != nil && x.Drawee != nil {
		return *x.Drawee
	}
	return ""
}

func (x *Boleto) GetDocumentDate() string {
	if x != nil && x.DocumentDate != nil {
		return *x.DocumentDate
	}
	return ""
}

func (x *Boleto) GetDueDate() string {
	if x != nil && x.DueDate != nil {
		return *x.DueDate
	}
	return ""
}

func (x *Boleto) GetDocumentAmount() float64 {
	if x != nil && x.DocumentAmount != nil {
		return *x.DocumentAmount
	}
	return 0
}

func (x *Boleto) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Boleto) GetDiscount() float64 {
	if x != nil && x.Discount != nil {
		return *x.Discount
	}
	return 0
}

func (x *Boleto) GetInterestAndFines() float64 {
	if x != nil && x.InterestAndFines != nil {
		return *x.InterestAndFines
	}
	return 0
}

func (x *Boleto) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *Boleto) GetGuideNumber() string {
	if x != nil && x.GuideNumber != nil {
		return *x.GuideNumber
	}
	return ""
}

func (x *Boleto) GetPixQrCodeText() string {
	if x != nil && x.PixQrCodeText != nil {
		return *x.PixQrCodeText
	}
	return ""
}

func (x *Boleto) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Boleto) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Boleto) GetComments() string {
	if x != nil && x.Comments != nil {
		return *x.Comments
	}
	return ""
}

func (x *Boleto) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Boleto) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateCompanyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyRequest) Reset() {
	*x = CreateCompanyRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyRequest) ProtoMessage() {}

func (x *CreateCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyRequest.ProtoReflect.Descriptor instead.
func (*CreateCompanyRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{2}
}

func (x *CreateCompanyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyResponse) Reset() {
	*x = CreateCompanyResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyResponse) ProtoMessage() {}

func (x *CreateCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyResponse.ProtoReflect.Descriptor instead.
func (*CreateCompanyResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{3}
}

func (x *CreateCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

type ListCompaniesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesRequest) Reset() {
	*x = ListCompaniesRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesRequest) ProtoMessage() {}

func (x *ListCompaniesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesRequest.ProtoReflect.Descriptor instead.
func (*ListCompaniesRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{4}
}

type ListCompaniesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Companies     []*Company             `protobuf:"bytes,1,rep,name=companies,proto3" json:"companies,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesResponse) Reset() {
	*x = ListCompaniesResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesResponse) ProtoMessage() {}

func (x *ListCompaniesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesResponse.ProtoReflect.Descriptor instead.
func (*ListCompaniesResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{5}
}

func (x *ListCompaniesResponse) GetCompanies() []*Company {
	if x != nil {
		return x.Companies
	}
	return nil
}

type ListBoletosRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional, YYYY-MM-DD, due-date window
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // optional, YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBoletosRequest) Reset() {
	*x = ListBoletosRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBoletosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBoletosRequest) ProtoMessage() {}

func (x *ListBoletosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBoletosRequest.ProtoReflect.Descriptor instead.
func (*ListBoletosRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{6}
}

func (x *ListBoletosRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ListBoletosRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListBoletosRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListBoletosRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListBoletosResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Boletos       []*Boleto              `protobuf:"bytes,1,rep,name=boletos,proto3" json:"boletos,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBoletosResponse) Reset() {
	*x = ListBoletosResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBoletosResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBoletosResponse) ProtoMessage() {}

func (x *ListBoletosResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBoletosResponse.ProtoReflect.Descriptor instead.
func (*ListBoletosResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{7}
}

func (x *ListBoletosResponse) GetBoletos() []*Boleto {
	if x != nil {
		return x.Boletos
	}
	return nil
}

type UpdateBoletoStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoletoId      string                 `protobuf:"bytes,1,opt,name=boleto_id,json=boletoId,proto3" json:"boleto_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateBoletoStatusRequest) Reset() {
	*x = UpdateBoletoStatusRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateBoletoStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateBoletoStatusRequest) ProtoMessage() {}

func (x *UpdateBoletoStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateBoletoStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateBoletoStatusRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateBoletoStatusRequest) GetBoletoId() string {
	if x != nil {
		return x.BoletoId
	}
	return ""
}

func (x *UpdateBoletoStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateBoletoStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Boleto        *Boleto                `protobuf:"bytes,1,opt,name=boleto,proto3" json:"boleto,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateBoletoStatusResponse) Reset() {
	*x = UpdateBoletoStatusResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateBoletoStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateBoletoStatusResponse) ProtoMessage() {}

func (x *UpdateBoletoStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateBoletoStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateBoletoStatusResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateBoletoStatusResponse) GetBoleto() *Boleto {
	if x != nil {
		return x.Boleto
	}
	return nil
}

type UpdateBoletoCommentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoletoId      string                 `protobuf:"bytes,1,opt,name=boleto_id,json=boletoId,proto3" json:"boleto_id,omitempty"`
	Comments      string                 `protobuf:"bytes,2,opt,name=comments,proto3" json:"comments,omitempty"` // empty clears the comments
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateBoletoCommentsRequest) Reset() {
	*x = UpdateBoletoCommentsRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateBoletoCommentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateBoletoCommentsRequest) ProtoMessage() {}

func (x *UpdateBoletoCommentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateBoletoCommentsRequest.ProtoReflect.Descriptor instead.
func (*UpdateBoletoCommentsRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateBoletoCommentsRequest) GetBoletoId() string {
	if x != nil {
		return x.BoletoId
	}
	return ""
}

func (x *UpdateBoletoCommentsRequest) GetComments() string {
	if x != nil {
		return x.Comments
	}
	return ""
}

type UpdateBoletoCommentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Boleto        *Boleto                `protobuf:"bytes,1,opt,name=boleto,proto3" json:"boleto,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateBoletoCommentsResponse) Reset() {
	*x = UpdateBoletoCommentsResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateBoletoCommentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateBoletoCommentsResponse) ProtoMessage() {}

func (x *UpdateBoletoCommentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateBoletoCommentsResponse.ProtoReflect.Descriptor instead.
func (*UpdateBoletoCommentsResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateBoletoCommentsResponse) GetBoleto() *Boleto {
	if x != nil {
		return x.Boleto
	}
	return nil
}

type DeleteBoletoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoletoId      string                 `protobuf:"bytes,1,opt,name=boleto_id,json=boletoId,proto3" json:"boleto_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBoletoRequest) Reset() {
	*x = DeleteBoletoRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBoletoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBoletoRequest) ProtoMessage() {}

func (x *DeleteBoletoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBoletoRequest.ProtoReflect.Descriptor instead.
func (*DeleteBoletoRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteBoletoRequest) GetBoletoId() string {
	if x != nil {
		return x.BoletoId
	}
	return ""
}

type DeleteBoletoResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBoletoResponse) Reset() {
	*x = DeleteBoletoResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBoletoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBoletoResponse) ProtoMessage() {}

func (x *DeleteBoletoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBoletoResponse.ProtoReflect.Descriptor instead.
func (*DeleteBoletoResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{13}
}

type ExportBoletosRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional, YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // optional, YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBoletosRequest) Reset() {
	*x = ExportBoletosRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBoletosRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBoletosRequest) ProtoMessage() {}

func (x *ExportBoletosRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBoletosRequest.ProtoReflect.Descriptor instead.
func (*ExportBoletosRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{14}
}

func (x *ExportBoletosRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ExportBoletosRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportBoletosRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportBoletosRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportBoletosResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBoletosResponse) Reset() {
	*x = ExportBoletosResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBoletosResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBoletosResponse) ProtoMessage() {}

func (x *ExportBoletosResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBoletosResponse.ProtoReflect.Descriptor instead.
func (*ExportBoletosResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{15}
}

func (x *ExportBoletosResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{16}
}

func (x *IngestFileRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	BoletoId       string                 `protobuf:"bytes,7,opt,name=boleto_id,json=boletoId,proto3" json:"boleto_id,omitempty"` // set when the pipeline persisted a boleto
	Error          string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`                       // stable message key, optionally ": detail"
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{17}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetBoletoId() string {
	if x != nil {
		return x.BoletoId
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{18}
}

func (x *IngestDirectoryRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_boletos_v1_boletos_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_boletos_v1_boletos_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_boletos_v1_boletos_proto_rawDescGZIP(), []int{19}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

var File_boletos_v1_boletos_proto protoreflect.FileDescriptor

const file_boletos_v1_boletos_proto_rawDesc = "" +
	"\n" +
	"\x18boletos/v1/boletos.proto\x12\n" +
	"boletos.v1\"k\n" +
	"\aCompany\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\"\x82\x06\n" +
	"\x06Boleto\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12!\n" +
	"\trecipient\x18\x03 \x01(\tH\x00R\trecipient\x88\x01\x01\x12\x1b\n" +
	"\x06drawee\x18\x04 \x01(\tH\x01R\x06drawee\x88\x01\x01\x12(\n" +
	"\rdocument_date\x18\x05 \x01(\tH\x02R\fdocumentDate\x88\x01\x01\x12\x1e\n" +
	"\bdue_date\x18\x06 \x01(\tH\x03R\adueDate\x88\x01\x01\x12,\n" +
	"\x0fdocument_amount\x18\a \x01(\x01H\x04R\x0edocumentAmount\x88\x01\x01\x12\x16\n" +
	"\x06amount\x18\b \x01(\x01R\x06amount\x12\x1f\n" +
	"\bdiscount\x18\t \x01(\x01H\x05R\bdiscount\x88\x01\x01\x121\n" +
	"\x12interest_and_fines\x18\n" +
	" \x01(\x01H\x06R\x10interestAndFines\x88\x01\x01\x12\x18\n" +
	"\abarcode\x18\v \x01(\tR\abarcode\x12&\n" +
	"\fguide_number\x18\f \x01(\tH\aR\vguideNumber\x88\x01\x01\x12,\n" +
	"\x10pix_qr_code_text\x18\r \x01(\tH\bR\rpixQrCodeText\x88\x01\x01\x12\x16\n" +
	"\x06status\x18\x0e \x01(\tR\x06status\x12\x1b\n" +
	"\tfile_name\x18\x0f \x01(\tR\bfileName\x12\x1f\n" +
	"\bcomments\x18\x10 \x01(\tH\tR\bcomments\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x12 \x01(\tR\tupdatedAtB\f\n" +
	"\n" +
	"_recipientB\t\n" +
	"\a_draweeB\x10\n" +
	"\x0e_document_dateB\v\n" +
	"\t_due_dateB\x12\n" +
	"\x10_document_amountB\v\n" +
	"\t_discountB\x15\n" +
	"\x13_interest_and_finesB\x0f\n" +
	"\r_guide_numberB\x13\n" +
	"\x11_pix_qr_code_textB\v\n" +
	"\t_comments\"*\n" +
	"\x14CreateCompanyRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"F\n" +
	"\x15CreateCompanyResponse\x12-\n" +
	"\acompany\x18\x01 \x01(\v2\x13.boletos.v1.CompanyR\acompany\"\x16\n" +
	"\x14ListCompaniesRequest\"J\n" +
	"\x15ListCompaniesResponse\x121\n" +
	"\tcompanies\x18\x01 \x03(\v2\x13.boletos.v1.CompanyR\tcompanies\"\x81\x01\n" +
	"\x12ListBoletosRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"C\n" +
	"\x13ListBoletosResponse\x12,\n" +
	"\aboletos\x18\x01 \x03(\v2\x12.boletos.v1.BoletoR\aboletos\"P\n" +
	"\x19UpdateBoletoStatusRequest\x12\x1b\n" +
	"\tboleto_id\x18\x01 \x01(\tR\bboletoId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"H\n" +
	"\x1aUpdateBoletoStatusResponse\x12*\n" +
	"\x06boleto\x18\x01 \x01(\v2\x12.boletos.v1.BoletoR\x06boleto\"V\n" +
	"\x1bUpdateBoletoCommentsRequest\x12\x1b\n" +
	"\tboleto_id\x18\x01 \x01(\tR\bboletoId\x12\x1a\n" +
	"\bcomments\x18\x02 \x01(\tR\bcomments\"J\n" +
	"\x1cUpdateBoletoCommentsResponse\x12*\n" +
	"\x06boleto\x18\x01 \x01(\v2\x12.boletos.v1.BoletoR\x06boleto\"2\n" +
	"\x13DeleteBoletoRequest\x12\x1b\n" +
	"\tboleto_id\x18\x01 \x01(\tR\bboletoId\"\x16\n" +
	"\x14DeleteBoletoResponse\"\x83\x01\n" +
	"\x14ExportBoletosRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"+\n" +
	"\x15ExportBoletosResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\x87\x02\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x1b\n" +
	"\tboleto_id\x18\a \x01(\tR\bboletoId\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.boletos.v1.IngestResponseR\aresults2\x85\x05\n" +
	"\x0eBoletosService\x12T\n" +
	"\rCreateCompany\x12 .boletos.v1.CreateCompanyRequest\x1a!.boletos.v1.CreateCompanyResponse\x12T\n" +
	"\rListCompanies\x12 .boletos.v1.ListCompaniesRequest\x1a!.boletos.v1.ListCompaniesResponse\x12N\n" +
	"\vListBoletos\x12\x1e.boletos.v1.ListBoletosRequest\x1a\x1f.boletos.v1.ListBoletosResponse\x12c\n" +
	"\x12UpdateBoletoStatus\x12%.boletos.v1.UpdateBoletoStatusRequest\x1a&.boletos.v1.UpdateBoletoStatusResponse\x12i\n" +
	"\x14UpdateBoletoComments\x12'.boletos.v1.UpdateBoletoCommentsRequest\x1a(.boletos.v1.UpdateBoletoCommentsResponse\x12Q\n" +
	"\fDeleteBoleto\x12\x1f.boletos.v1.DeleteBoletoRequest\x1a .boletos.v1.DeleteBoletoResponse\x12T\n" +
	"\rExportBoletos\x12 .boletos.v1.ExportBoletosRequest\x1a!.boletos.v1.ExportBoletosResponse2\xb7\x01\n" +
	"\x10IngestionService\x12G\n" +
	"\n" +
	"IngestFile\x12\x1d.boletos.v1.IngestFileRequest\x1a\x1a.boletos.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".boletos.v1.IngestDirectoryRequest\x1a#.boletos.v1.IngestDirectoryResponseBDZBgithub.com/brpayflow/boleto-tracker/gen/proto/boletos/v1;boletosv1b\x06proto3"

var (
	file_boletos_v1_boletos_proto_rawDescOnce sync.Once
	file_boletos_v1_boletos_proto_rawDescData []byte
)

func file_boletos_v1_boletos_proto_rawDescGZIP() []byte {
	file_boletos_v1_boletos_proto_rawDescOnce.Do(func() {
		file_boletos_v1_boletos_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_boletos_v1_boletos_proto_rawDesc), len(file_boletos_v1_boletos_proto_rawDesc)))
	})
	return file_boletos_v1_boletos_proto_rawDescData
}

var file_boletos_v1_boletos_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_boletos_v1_boletos_proto_goTypes = []any{
	(*Company)(nil),                      // 0: boletos.v1.Company
	(*Boleto)(nil),                       // 1: boletos.v1.Boleto
	(*CreateCompanyRequest)(nil),         // 2: boletos.v1.CreateCompanyRequest
	(*CreateCompanyResponse)(nil),        // 3: boletos.v1.CreateCompanyResponse
	(*ListCompaniesRequest)(nil),         // 4: boletos.v1.ListCompaniesRequest
	(*ListCompaniesResponse)(nil),        // 5: boletos.v1.ListCompaniesResponse
	(*ListBoletosRequest)(nil),           // 6: boletos.v1.ListBoletosRequest
	(*ListBoletosResponse)(nil),          // 7: boletos.v1.ListBoletosResponse
	(*UpdateBoletoStatusRequest)(nil),    // 8: boletos.v1.UpdateBoletoStatusRequest
	(*UpdateBoletoStatusResponse)(nil),   // 9: boletos.v1.UpdateBoletoStatusResponse
	(*UpdateBoletoCommentsRequest)(nil),  // 10: boletos.v1.UpdateBoletoCommentsRequest
	(*UpdateBoletoCommentsResponse)(nil), // 11: boletos.v1.UpdateBoletoCommentsResponse
	(*DeleteBoletoRequest)(nil),          // 12: boletos.v1.DeleteBoletoRequest
	(*DeleteBoletoResponse)(nil),         // 13: boletos.v1.DeleteBoletoResponse
	(*ExportBoletosRequest)(nil),         // 14: boletos.v1.ExportBoletosRequest
	(*ExportBoletosResponse)(nil),        // 15: boletos.v1.ExportBoletosResponse
	(*IngestFileRequest)(nil),            // 16: boletos.v1.IngestFileRequest
	(*IngestResponse)(nil),               // 17: boletos.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),       // 18: boletos.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),      // 19: boletos.v1.IngestDirectoryResponse
}
var file_boletos_v1_boletos_proto_depIdxs = []int32{
	0,  // 0: boletos.v1.CreateCompanyResponse.company:type_name -> boletos.v1.Company
	0,  // 1: boletos.v1.ListCompaniesResponse.companies:type_name -> boletos.v1.Company
	1,  // 2: boletos.v1.ListBoletosResponse.boletos:type_name -> boletos.v1.Boleto
	1,  // 3: boletos.v1.UpdateBoletoStatusResponse.boleto:type_name -> boletos.v1.Boleto
	1,  // 4: boletos.v1.UpdateBoletoCommentsResponse.boleto:type_name -> boletos.v1.Boleto
	17, // 5: boletos.v1.IngestDirectoryResponse.results:type_name -> boletos.v1.IngestResponse
	2,  // 6: boletos.v1.BoletosService.CreateCompany:input_type -> boletos.v1.CreateCompanyRequest
	4,  // 7: boletos.v1.BoletosService.ListCompanies:input_type -> boletos.v1.ListCompaniesRequest
	6,  // 8: boletos.v1.BoletosService.ListBoletos:input_type -> boletos.v1.ListBoletosRequest
	8,  // 9: boletos.v1.BoletosService.UpdateBoletoStatus:input_type -> boletos.v1.UpdateBoletoStatusRequest
	10, // 10: boletos.v1.BoletosService.UpdateBoletoComments:input_type -> boletos.v1.UpdateBoletoCommentsRequest
	12, // 11: boletos.v1.BoletosService.DeleteBoleto:input_type -> boletos.v1.DeleteBoletoRequest
	14, // 12: boletos.v1.BoletosService.ExportBoletos:input_type -> boletos.v1.ExportBoletosRequest
	16, // 13: boletos.v1.IngestionService.IngestFile:input_type -> boletos.v1.IngestFileRequest
	18, // 14: boletos.v1.IngestionService.IngestDirectory:input_type -> boletos.v1.IngestDirectoryRequest
	3,  // 15: boletos.v1.BoletosService.CreateCompany:output_type -> boletos.v1.CreateCompanyResponse
	5,  // 16: boletos.v1.BoletosService.ListCompanies:output_type -> boletos.v1.ListCompaniesResponse
	7,  // 17: boletos.v1.BoletosService.ListBoletos:output_type -> boletos.v1.ListBoletosResponse
	9,  // 18: boletos.v1.BoletosService.UpdateBoletoStatus:output_type -> boletos.v1.UpdateBoletoStatusResponse
	11, // 19: boletos.v1.BoletosService.UpdateBoletoComments:output_type -> boletos.v1.UpdateBoletoCommentsResponse
	13, // 20: boletos.v1.BoletosService.DeleteBoleto:output_type -> boletos.v1.DeleteBoletoResponse
	15, // 21: boletos.v1.BoletosService.ExportBoletos:output_type -> boletos.v1.ExportBoletosResponse
	17, // 22: boletos.v1.IngestionService.IngestFile:output_type -> boletos.v1.IngestResponse
	19, // 23: boletos.v1.IngestionService.IngestDirectory:output_type -> boletos.v1.IngestDirectoryResponse
	15, // [15:24] is the sub-list for method output_type
	6,  // [6:15] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_boletos_v1_boletos_proto_init() }
func file_boletos_v1_boletos_proto_init() {
	if File_boletos_v1_boletos_proto != nil {
		return
	}
	file_boletos_v1_boletos_proto_msgTypes[1].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_boletos_v1_boletos_proto_rawDesc), len(file_boletos_v1_boletos_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_boletos_v1_boletos_proto_goTypes,
		DependencyIndexes: file_boletos_v1_boletos_proto_depIdxs,
		MessageInfos:      file_boletos_v1_boletos_proto_msgTypes,
	}.Build()
	File_boletos_v1_boletos_proto = out.File
	file_boletos_v1_boletos_proto_goTypes = nil
	file_boletos_v1_boletos_proto_depIdxs = nil
}
