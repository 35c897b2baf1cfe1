package testdata

// Bodies returned by the stub Webpay server, as documented for REST v1.2.

const CreateResponse = `{"token":"T1","url":"http://gw/pay"}`

const CommitAuthorized = `{
  "vci": "TSY",
  "amount": 1000,
  "status": "AUTHORIZED",
  "buy_order": "ORDER1",
  "session_id": "SESS1",
  "card_detail": {"card_number": "6623"},
  "accounting_date": "0522",
  "transaction_date": "2019-05-22T16:41:21.063Z",
  "authorization_code": "1213",
  "payment_type_code": "VN",
  "response_code": 0,
  "installments_number": 0
}`

const CommitRejected = `{
  "vci": "TSY",
  "amount": 1000,
  "status": "FAILED",
  "buy_order": "ORDER1",
  "session_id": "SESS1",
  "card_detail": {"card_number": "6623"},
  "accounting_date": "0522",
  "transaction_date": "2019-05-22T16:41:21.063Z",
  "authorization_code": "000000",
  "payment_type_code": "VN",
  "response_code": -1,
  "installments_number": 0
}`

const RefundNullified = `{
  "type": "NULLIFIED",
  "authorization_code": "123456",
  "authorization_date": "2019-03-20T20:18:20Z",
  "nullified_amount": 500,
  "balance": 500,
  "response_code": 0
}`

const InvalidToken = `{"error_message":"Invalid value for parameter: token"}`
