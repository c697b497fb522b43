package postgres

// Schema holds the DDL for the order header table. Items are deliberately
// absent, they live in the document store keyed by the same order id.
const Schema = `
CREATE TABLE IF NOT EXISTS orders (
    id           UUID PRIMARY KEY,
    customer_id  UUID NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL,
    status       TEXT NOT NULL,
    total_amount NUMERIC(18, 2) NOT NULL CHECK (total_amount >= 0)
);
`
