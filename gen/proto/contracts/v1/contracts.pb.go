// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractsv1

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

type Contract struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OrganizationId      string                 `protobuf:"bytes,2,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	Title               string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	VendorName          string                 `protobuf:"bytes,4,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	ContractType        string                 `protobuf:"bytes,5,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	Direction           string                 `protobuf:"bytes,6,opt,name=direction,proto3" json:"direction,omitempty"`
	StartDate           string                 `protobuf:"bytes,7,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate             string                 `protobuf:"bytes,8,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`       // YYYY-MM-DD
	MonthlyValue        float64                `protobuf:"fixed64,9,opt,name=monthly_value,json=monthlyValue,proto3" json:"monthly_value,omitempty"`
	HasMonthlyValue     bool                   `protobuf:"varint,10,opt,name=has_monthly_value,json=hasMonthlyValue,proto3" json:"has_monthly_value,omitempty"`
	TotalValue          float64                `protobuf:"fixed64,11,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"`
	HasTotalValue       bool                   `protobuf:"varint,12,opt,name=has_total_value,json=hasTotalValue,proto3" json:"has_total_value,omitempty"`
	AutoRenews          bool                   `protobuf:"varint,13,opt,name=auto_renews,json=autoRenews,proto3" json:"auto_renews,omitempty"`
	RenewalTerm         string                 `protobuf:"bytes,14,opt,name=renewal_term,json=renewalTerm,proto3" json:"renewal_term,omitempty"`
	NoticePeriodDays    int32                  `protobuf:"varint,15,opt,name=notice_period_days,json=noticePeriodDays,proto3" json:"notice_period_days,omitempty"`
	HasNoticePeriodDays bool                   `protobuf:"varint,16,opt,name=has_notice_period_days,json=hasNoticePeriodDays,proto3" json:"has_notice_period_days,omitempty"`
	Notes               string                 `protobuf:"bytes,17,opt,name=notes,proto3" json:"notes,omitempty"`
	ExtractionStatus    string                 `protobuf:"bytes,18,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	LastChangesSummary  string                 `protobuf:"bytes,19,opt,name=last_changes_summary,json=lastChangesSummary,proto3" json:"last_changes_summary,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           string                 `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

func (x *Contract) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Contract) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Contract) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *Contract) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *Contract) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Contract) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *Contract) GetMonthlyValue() float64 {
	if x != nil {
		return x.MonthlyValue
	}
	return 0
}

func (x *Contract) GetHasMonthlyValue() bool {
	if x != nil {
		return x.HasMonthlyValue
	}
	return false
}

func (x *Contract) GetTotalValue() float64 {
	if x != nil {
		return x.TotalValue
	}
	return 0
}

func (x *Contract) GetHasTotalValue() bool {
	if x != nil {
		return x.HasTotalValue
	}
	return false
}

func (x *Contract) GetAutoRenews() bool {
	if x != nil {
		return x.AutoRenews
	}
	return false
}

func (x *Contract) GetRenewalTerm() string {
	if x != nil {
		return x.RenewalTerm
	}
	return ""
}

func (x *Contract) GetNoticePeriodDays() int32 {
	if x != nil {
		return x.NoticePeriodDays
	}
	return 0
}

func (x *Contract) GetHasNoticePeriodDays() bool {
	if x != nil {
		return x.HasNoticePeriodDays
	}
	return false
}

func (x *Contract) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Contract) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

func (x *Contract) GetLastChangesSummary() string {
	if x != nil {
		return x.LastChangesSummary
	}
	return ""
}

func (x *Contract) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contract) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Clause struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractId         string                 `protobuf:"bytes,2,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	ClauseType         string                 `protobuf:"bytes,3,opt,name=clause_type,json=clauseType,proto3" json:"clause_type,omitempty"`
	Content            string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	PageReference      string                 `protobuf:"bytes,5,opt,name=page_reference,json=pageReference,proto3" json:"page_reference,omitempty"`
	ConfidenceScore    int32                  `protobuf:"varint,6,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	HasConfidenceScore bool                   `protobuf:"varint,7,opt,name=has_confidence_score,json=hasConfidenceScore,proto3" json:"has_confidence_score,omitempty"`
	SourceDocumentId   string                 `protobuf:"bytes,8,opt,name=source_document_id,json=sourceDocumentId,proto3" json:"source_document_id,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Clause) Reset() {
	*x = Clause{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Clause) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Clause) ProtoMessage() {}

func (x *Clause) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Clause.ProtoReflect.Descriptor instead.
func (*Clause) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *Clause) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Clause) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *Clause) GetClauseType() string {
	if x != nil {
		return x.ClauseType
	}
	return ""
}

func (x *Clause) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Clause) GetPageReference() string {
	if x != nil {
		return x.PageReference
	}
	return ""
}

func (x *Clause) GetConfidenceScore() int32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Clause) GetHasConfidenceScore() bool {
	if x != nil {
		return x.HasConfidenceScore
	}
	return false
}

func (x *Clause) GetSourceDocumentId() string {
	if x != nil {
		return x.SourceDocumentId
	}
	return ""
}

func (x *Clause) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractId       string                 `protobuf:"bytes,2,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Filename         string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType      string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	DocumentType     string                 `protobuf:"bytes,5,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Position         int32                  `protobuf:"varint,6,opt,name=position,proto3" json:"position,omitempty"`
	ExtractionStatus string                 `protobuf:"bytes,7,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	PageCount        int32                  `protobuf:"varint,8,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	HasPageCount     bool                   `protobuf:"varint,9,opt,name=has_page_count,json=hasPageCount,proto3" json:"has_page_count,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *Document) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetHasPageCount() bool {
	if x != nil {
		return x.HasPageCount
	}
	return false
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *GetContractRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type GetContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Clauses       []*Clause              `protobuf:"bytes,2,rep,name=clauses,proto3" json:"clauses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *GetContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

func (x *GetContractResponse) GetClauses() []*Clause {
	if x != nil {
		return x.Clauses
	}
	return nil
}

type ListContractsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *ListContractsRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type TriggerAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerAnalysisRequest) Reset() {
	*x = TriggerAnalysisRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerAnalysisRequest) ProtoMessage() {}

func (x *TriggerAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerAnalysisRequest.ProtoReflect.Descriptor instead.
func (*TriggerAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

func (x *TriggerAnalysisRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type TriggerAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerAnalysisResponse) Reset() {
	*x = TriggerAnalysisResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerAnalysisResponse) ProtoMessage() {}

func (x *TriggerAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerAnalysisResponse.ProtoReflect.Descriptor instead.
func (*TriggerAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *TriggerAnalysisResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ExportContractsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OrganizationId string                 `protobuf:"bytes,1,opt,name=organization_id,json=organizationId,proto3" json:"organization_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportContractsRequest) Reset() {
	*x = ExportContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsRequest) ProtoMessage() {}

func (x *ExportContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsRequest.ProtoReflect.Descriptor instead.
func (*ExportContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *ExportContractsRequest) GetOrganizationId() string {
	if x != nil {
		return x.OrganizationId
	}
	return ""
}

type ExportContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsResponse) Reset() {
	*x = ExportContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsResponse) ProtoMessage() {}

func (x *ExportContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsResponse.ProtoReflect.Descriptor instead.
func (*ExportContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *ExportContractsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	DocumentType  string                 `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{13}
}

func (x *UploadDocumentRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{14}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ReanalysisQueued bool                   `protobuf:"varint,1,opt,name=reanalysis_queued,json=reanalysisQueued,proto3" json:"reanalysis_queued,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteDocumentResponse) GetReanalysisQueued() bool {
	if x != nil {
		return x.ReanalysisQueued
	}
	return false
}

type ReextractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReextractDocumentRequest) Reset() {
	*x = ReextractDocumentRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReextractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReextractDocumentRequest) ProtoMessage() {}

func (x *ReextractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReextractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReextractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{17}
}

func (x *ReextractDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ReextractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReextractDocumentResponse) Reset() {
	*x = ReextractDocumentResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReextractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReextractDocumentResponse) ProtoMessage() {}

func (x *ReextractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReextractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReextractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{18}
}

func (x *ReextractDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"\xeb\x05\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0forganization_id\x18\x02 \x01(\tR\x0eorganizationId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x1f\n" +
	"\vvendor_name\x18\x04 \x01(\tR\n" +
	"vendorName\x12#\n" +
	"\rcontract_type\x18\x05 \x01(\tR\fcontractType\x12\x1c\n" +
	"\tdirection\x18\x06 \x01(\tR\tdirection\x12\x1d\n" +
	"\n" +
	"start_date\x18\a \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\b \x01(\tR\aendDate\x12#\n" +
	"\rmonthly_value\x18\t \x01(\x01R\fmonthlyValue\x12*\n" +
	"\x11has_monthly_value\x18\n" +
	" \x01(\bR\x0fhasMonthlyValue\x12\x1f\n" +
	"\vtotal_value\x18\v \x01(\x01R\n" +
	"totalValue\x12&\n" +
	"\x0fhas_total_value\x18\f \x01(\bR\rhasTotalValue\x12\x1f\n" +
	"\vauto_renews\x18\r \x01(\bR\n" +
	"autoRenews\x12!\n" +
	"\frenewal_term\x18\x0e \x01(\tR\vrenewalTerm\x12,\n" +
	"\x12notice_period_days\x18\x0f \x01(\x05R\x10noticePeriodDays\x123\n" +
	"\x16has_notice_period_days\x18\x10 \x01(\bR\x13hasNoticePeriodDays\x12\x14\n" +
	"\x05notes\x18\x11 \x01(\tR\x05notes\x12+\n" +
	"\x11extraction_status\x18\x12 \x01(\tR\x10extractionStatus\x120\n" +
	"\x14last_changes_summary\x18\x13 \x01(\tR\x12lastChangesSummary\x12\x1d\n" +
	"\n" +
	"created_at\x18\x14 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x15 \x01(\tR\tupdatedAt\"\xc5\x02\n" +
	"\x06Clause\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcontract_id\x18\x02 \x01(\tR\n" +
	"contractId\x12\x1f\n" +
	"\vclause_type\x18\x03 \x01(\tR\n" +
	"clauseType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x12%\n" +
	"\x0epage_reference\x18\x05 \x01(\tR\rpageReference\x12)\n" +
	"\x10confidence_score\x18\x06 \x01(\x05R\x0fconfidenceScore\x120\n" +
	"\x14has_confidence_score\x18\a \x01(\bR\x12hasConfidenceScore\x12,\n" +
	"\x12source_document_id\x18\b \x01(\tR\x10sourceDocumentId\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\xeb\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcontract_id\x18\x02 \x01(\tR\n" +
	"contractId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12#\n" +
	"\rdocument_type\x18\x05 \x01(\tR\fdocumentType\x12\x1a\n" +
	"\bposition\x18\x06 \x01(\x05R\bposition\x12+\n" +
	"\x11extraction_status\x18\a \x01(\tR\x10extractionStatus\x12\x1d\n" +
	"\n" +
	"page_count\x18\b \x01(\x05R\tpageCount\x12$\n" +
	"\x0ehas_page_count\x18\t \x01(\bR\fhasPageCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"5\n" +
	"\x12GetContractRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"y\n" +
	"\x13GetContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\x12.\n" +
	"\aclauses\x18\x02 \x03(\v2\x14.contracts.v1.ClauseR\aclauses\"?\n" +
	"\x14ListContractsRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\"M\n" +
	"\x15ListContractsResponse\x124\n" +
	"\tcontracts\x18\x01 \x03(\v2\x16.contracts.v1.ContractR\tcontracts\"7\n" +
	"\x14ListDocumentsRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.contracts.v1.DocumentR\tdocuments\"9\n" +
	"\x16TriggerAnalysisRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"1\n" +
	"\x17TriggerAnalysisResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"A\n" +
	"\x16ExportContractsRequest\x12'\n" +
	"\x0forganization_id\x18\x01 \x01(\tR\x0eorganizationId\"-\n" +
	"\x17ExportContractsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xb6\x01\n" +
	"\x15UploadDocumentRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\"p\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.contracts.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"E\n" +
	"\x16DeleteDocumentResponse\x12+\n" +
	"\x11reanalysis_queued\x18\x01 \x01(\bR\x10reanalysisQueued\";\n" +
	"\x18ReextractDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"3\n" +
	"\x19ReextractDocumentResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued2\xda\x03\n" +
	"\x10ContractsService\x12R\n" +
	"\vGetContract\x12 .contracts.v1.GetContractRequest\x1a!.contracts.v1.GetContractResponse\x12X\n" +
	"\rListContracts\x12\".contracts.v1.ListContractsRequest\x1a#.contracts.v1.ListContractsResponse\x12X\n" +
	"\rListDocuments\x12\".contracts.v1.ListDocumentsRequest\x1a#.contracts.v1.ListDocumentsResponse\x12^\n" +
	"\x0fTriggerAnalysis\x12$.contracts.v1.TriggerAnalysisRequest\x1a%.contracts.v1.TriggerAnalysisResponse\x12^\n" +
	"\x0fExportContracts\x12$.contracts.v1.ExportContractsRequest\x1a%.contracts.v1.ExportContractsResponse2\xb2\x02\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.contracts.v1.UploadDocumentRequest\x1a$.contracts.v1.UploadDocumentResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.contracts.v1.DeleteDocumentRequest\x1a$.contracts.v1.DeleteDocumentResponse\x12d\n" +
	"\x11ReextractDocument\x12&.contracts.v1.ReextractDocumentRequest\x1a'.contracts.v1.ReextractDocumentResponseBKZIgithub.com/contractwatch/contractwatch/gen/proto/contracts/v1;contractsv1b\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*Contract)(nil),                  // 0: contracts.v1.Contract
	(*Clause)(nil),                    // 1: contracts.v1.Clause
	(*Document)(nil),                  // 2: contracts.v1.Document
	(*GetContractRequest)(nil),        // 3: contracts.v1.GetContractRequest
	(*GetContractResponse)(nil),       // 4: contracts.v1.GetContractResponse
	(*ListContractsRequest)(nil),      // 5: contracts.v1.ListContractsRequest
	(*ListContractsResponse)(nil),     // 6: contracts.v1.ListContractsResponse
	(*ListDocumentsRequest)(nil),      // 7: contracts.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 8: contracts.v1.ListDocumentsResponse
	(*TriggerAnalysisRequest)(nil),    // 9: contracts.v1.TriggerAnalysisRequest
	(*TriggerAnalysisResponse)(nil),   // 10: contracts.v1.TriggerAnalysisResponse
	(*ExportContractsRequest)(nil),    // 11: contracts.v1.ExportContractsRequest
	(*ExportContractsResponse)(nil),   // 12: contracts.v1.ExportContractsResponse
	(*UploadDocumentRequest)(nil),     // 13: contracts.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 14: contracts.v1.UploadDocumentResponse
	(*DeleteDocumentRequest)(nil),     // 15: contracts.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),    // 16: contracts.v1.DeleteDocumentResponse
	(*ReextractDocumentRequest)(nil),  // 17: contracts.v1.ReextractDocumentRequest
	(*ReextractDocumentResponse)(nil), // 18: contracts.v1.ReextractDocumentResponse
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	0,  // 0: contracts.v1.GetContractResponse.contract:type_name -> contracts.v1.Contract
	1,  // 1: contracts.v1.GetContractResponse.clauses:type_name -> contracts.v1.Clause
	0,  // 2: contracts.v1.ListContractsResponse.contracts:type_name -> contracts.v1.Contract
	2,  // 3: contracts.v1.ListDocumentsResponse.documents:type_name -> contracts.v1.Document
	2,  // 4: contracts.v1.UploadDocumentResponse.document:type_name -> contracts.v1.Document
	3,  // 5: contracts.v1.ContractsService.GetContract:input_type -> contracts.v1.GetContractRequest
	5,  // 6: contracts.v1.ContractsService.ListContracts:input_type -> contracts.v1.ListContractsRequest
	7,  // 7: contracts.v1.ContractsService.ListDocuments:input_type -> contracts.v1.ListDocumentsRequest
	9,  // 8: contracts.v1.ContractsService.TriggerAnalysis:input_type -> contracts.v1.TriggerAnalysisRequest
	11, // 9: contracts.v1.ContractsService.ExportContracts:input_type -> contracts.v1.ExportContractsRequest
	13, // 10: contracts.v1.DocumentsService.UploadDocument:input_type -> contracts.v1.UploadDocumentRequest
	15, // 11: contracts.v1.DocumentsService.DeleteDocument:input_type -> contracts.v1.DeleteDocumentRequest
	17, // 12: contracts.v1.DocumentsService.ReextractDocument:input_type -> contracts.v1.ReextractDocumentRequest
	4,  // 13: contracts.v1.ContractsService.GetContract:output_type -> contracts.v1.GetContractResponse
	6,  // 14: contracts.v1.ContractsService.ListContracts:output_type -> contracts.v1.ListContractsResponse
	8,  // 15: contracts.v1.ContractsService.ListDocuments:output_type -> contracts.v1.ListDocumentsResponse
	10, // 16: contracts.v1.ContractsService.TriggerAnalysis:output_type -> contracts.v1.TriggerAnalysisResponse
	12, // 17: contracts.v1.ContractsService.ExportContracts:output_type -> contracts.v1.ExportContractsResponse
	14, // 18: contracts.v1.DocumentsService.UploadDocument:output_type -> contracts.v1.UploadDocumentResponse
	16, // 19: contracts.v1.DocumentsService.DeleteDocument:output_type -> contracts.v1.DeleteDocumentResponse
	18, // 20: contracts.v1.DocumentsService.ReextractDocument:output_type -> contracts.v1.ReextractDocumentResponse
	13, // [13:21] is the sub-list for method output_type
	5,  // [5:13] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}
